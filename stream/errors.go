// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrInvalidConfig = errors.New("channels and frames per tick must be positive")
	ErrQueueTooSmall = errors.New("queue factor must leave slack above the buffer factor")
	ErrShortWrite    = errors.New("sink accepted fewer samples than requested")
)
