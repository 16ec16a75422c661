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

package timesince

import "time"

func stamp() time.Time {
	return time.Now()
}

func ages(start, deadline time.Time) (time.Duration, time.Duration) {
	elapsed := time.Now().Sub(start) // want "Can use time.Since"

	remaining := deadline.Sub(time.Now()) // want "Can use time.Until"

	return elapsed, remaining
}

// Differences between two plain instants stay, and an effectful operand
// cannot move across the implicit time.Now.
func kept(start, end time.Time) time.Duration {
	d := end.Sub(start)

	return d + time.Now().Sub(stamp())
}

// Sub dereferences a pointer receiver implicitly; Until takes the value.
func viaPointer(p *time.Time) time.Duration {
	return p.Sub(time.Now())
}
