// SPDX-License-Identifier: EPL-2.0

package audstream

import "errors"

var (
	// ErrUnknownFormat indicates the file extension does not map to a
	// registered decoder
	ErrUnknownFormat = errors.New("unknown audio format")
)
