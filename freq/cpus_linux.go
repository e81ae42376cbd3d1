// Copyright 2025 go-highway Authors
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

//go:build linux

package freq

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// AvailableCPUs returns the number of processing units this process may run
// on, honouring the CPU affinity mask. It never exceeds GOMAXPROCS.
func AvailableCPUs() int {
	n := runtime.GOMAXPROCS(0)

	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return n
	}
	if c := set.Count(); c > 0 && c < n {
		return c
	}
	return n
}
