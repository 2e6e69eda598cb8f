/*
 * Truffle Codec - Solidity type descriptors
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUserError(t *testing.T) {

	t.Parallel()

	userError := NewDefaultUserError("invalid %s", "input")

	assert.True(t, IsUserError(userError))
	assert.False(t, IsInternalError(userError))
	assert.Equal(t, "invalid input", userError.Error())

	wrapped := fmt.Errorf("while resolving: %w", userError)
	assert.True(t, IsUserError(wrapped))

	assert.False(t, IsUserError(fmt.Errorf("plain")))
}

func TestIsInternalError(t *testing.T) {

	t.Parallel()

	unexpected := NewUnexpectedError("unexpected %d", 42)
	assert.True(t, IsInternalError(unexpected))
	assert.False(t, IsUserError(unexpected))
	assert.Equal(t, "unexpected 42", unexpected.Error())

	unreachable := NewUnreachableError()
	assert.True(t, IsInternalError(unreachable))
	assert.True(t, IsInternalError(fmt.Errorf("wrapped: %w", unreachable)))
}

func TestRecover(t *testing.T) {

	t.Parallel()

	t.Run("error", func(t *testing.T) {

		t.Parallel()

		err := NewDefaultUserError("failed")
		assert.Equal(t, err, Recover(err))

		_, ok := GetExternalError(Recover(err))
		assert.False(t, ok)
	})

	t.Run("value", func(t *testing.T) {

		t.Parallel()

		err := Recover(42)
		require.Error(t, err)
		assert.Equal(t, "42", err.Error())

		externalError, ok := GetExternalError(fmt.Errorf("wrapped: %w", err))
		require.True(t, ok)
		assert.Equal(t, 42, externalError.Recovered)
	})
}
