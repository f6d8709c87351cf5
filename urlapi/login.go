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

package urlapi

import "strings"

// loginDetails is the result of splitting "user[:password][;options]".
// Empty fields are treated as absent.
type loginDetails struct {
	user     string
	password string
	options  string
}

// splitLogin tokenizes the login part of an authority. A ':' that comes
// after the ';' belongs to the options, not to a password.
func splitLogin(login string) (loginDetails, error) {
	for i := 0; i < len(login); i++ {
		if isControl(login[i]) {
			return loginDetails{}, &kindError{kind: ErrMalformedInput, details: "control character in login"}
		}
	}

	psep := strings.IndexByte(login, ':')
	osep := strings.IndexByte(login, ';')
	if psep >= 0 && osep >= 0 && psep > osep {
		psep = -1
	}

	var d loginDetails
	switch {
	case psep >= 0:
		d.user = login[:psep]
	case osep >= 0:
		d.user = login[:osep]
	default:
		d.user = login
	}

	if psep >= 0 {
		end := len(login)
		if osep > psep {
			end = osep
		}
		d.password = login[psep+1 : end]
	}
	if osep >= 0 {
		d.options = login[osep+1:]
	}
	return d, nil
}
