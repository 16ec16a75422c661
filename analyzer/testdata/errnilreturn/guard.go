// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package errnilreturn

import (
	"fmt"
	"strconv"
)

func collapsed(s string) error {
	_, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	return nil // want "Can be collapsed to 'return err'"
}

func logged(s string) error {
	_, err := strconv.Atoi(s)
	if err != nil {
		fmt.Println("parse failed")

		return err
	}

	return nil
}

type parseError struct{}

func (*parseError) Error() string { return "parse" }

// A concrete error type wrapped in the interface is never the nil
// interface, so the two returns differ.
func typed(e *parseError) error {
	if e != nil {
		return e
	}

	return nil
}

func paired(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	return n, nil
}
