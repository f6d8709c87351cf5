/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//go:build !windows

package urlapi

// adjustDrivePath refuses drive letters, both "file:/c:" and "file:c:",
// which only have a meaning on Windows.
func adjustDrivePath(path string) (string, error) {
	if hasDrivePrefix(path) {
		return "", &kindError{kind: ErrMalformedInput, details: "drive letter in file path"}
	}
	return path, nil
}
