package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmlite/wasmlite/wasm"
)

func TestOperandStack(t *testing.T) {
	s := newOperandStack()
	require.Equal(t, 0, s.depth())

	// growth over the initial allocation must preserve order
	const n = initialOperandStackHeight * 2
	for i := 0; i < n; i++ {
		s.push(wasm.I32(int32(i)))
	}
	require.Equal(t, n, s.depth())
	for i := n - 1; i >= 0; i-- {
		require.Equal(t, int32(i), s.pop().AsI32())
	}
	require.Equal(t, 0, s.depth())

	require.PanicsWithError(t, ErrStackInvariant.Error(), func() {
		s.pop()
	})
}

func TestFrameStack(t *testing.T) {
	s := newFrameStack(initialFrameStackHeight * 4)
	require.Nil(t, s.peek())

	frames := make([]*frame, initialFrameStackHeight*2)
	for i := range frames {
		frames[i] = &frame{pc: i}
		s.push(frames[i])
		require.Equal(t, frames[i], s.peek())
	}
	for i := len(frames) - 1; i >= 0; i-- {
		require.Equal(t, frames[i], s.pop())
	}

	require.PanicsWithError(t, ErrStackInvariant.Error(), func() {
		s.pop()
	})
}

func TestFrameStack_Limit(t *testing.T) {
	s := newFrameStack(3)
	s.push(&frame{})
	s.push(&frame{})
	s.push(&frame{})
	require.PanicsWithError(t, ErrCallStackOverflow.Error(), func() {
		s.push(&frame{})
	})
}
