// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional focustune project file.
//
//	+------------------+
//	| .focustune.yaml  |  yaml / yml / json / hcl
//	+--------+---------+
//	         |
//	+--------+---------+
//	|      Config      |  root, include, exclude, atomic_write
//	+------------------+
//
// The file tells focustune which files of a mod to rewrite when no paths are
// given on the command line:
//
//	root: .
//	include:
//	  - common/national_focus/**/*.txt
//	exclude:
//	  - "**/backup/**"
//	atomic_write: true
//
// The same in HCL, where `env` holds the process environment:
//
//	root    = env.HOI4_MOD_DIR
//	include = ["common/national_focus/**/*.txt"]
//
// A relative root is resolved against the directory of the config file.
package config
