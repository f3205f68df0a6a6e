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

package hwy

// ProcessWithTail is a helper for processing arrays with fixed-width vectors
// that handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of lanes
//
// Example:
//
//	hwy.ProcessWithTail(len(data), 4,
//	    func(offset int) {
//	        v := hwy.LoadFloat32x4(data[offset:])
//	        v.Add(v).StoreSlice(output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.LoadFloat32x4Padded(data[offset:offset+count], 0)
//	        v.Add(v).StorePartial(output[offset : offset+count])
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	remaining := size % lanes
	if remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of lanes.
func AlignedSize(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of lanes.
func IsAligned(size, lanes int) bool {
	if lanes <= 0 {
		return true
	}
	return size%lanes == 0
}
