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

/*
Package status renders the outcome of a batch for the user.

	+-------------+      +-------------+
	|   batch     | ---> |   Status    |
	|  (Summary)  |      | (UI/UX)     |
	+-------------+      +------+------+
	                            |
	               +------------+------------+
	               |                         |
	        +------+------+           +------+------+
	        |  Formatter  |           |   Printer   |
	        |  (strings)  |           |   (pterm)   |
	        +-------------+           +-------------+

The Formatter builds plain strings and is safe to test byte for byte. The
Printer lays those strings out with pterm: a table of failed files followed by
a one line verdict.

🔍 Example:

	p := status.NewPrinter(os.Stdout, status.NewDefaultFormatter())
	p.Summary(summary)
*/
package status
