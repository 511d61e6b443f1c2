package msgs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedRoundTrip(t *testing.T) {
	in := &VisionBlocks{Blocks: []*VisionBlock{
		{Signature: 1, X: 2, Y: 3, Width: 2, Height: 5, Area: 10},
		{Signature: 0x0a, X: 160, Y: 100, Width: 4, Height: 4, Angle: -90, Area: 16, ColorCoded: true},
	}}
	typed, err := TypedFrom(in)
	require.NoError(t, err)
	typed.Sequence = 7
	data, err := typed.Encode()
	require.NoError(t, err)

	decoded, err := DecodeTyped(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), decoded.Sequence)
	assert.True(t, decoded.IsEvent())
	assert.False(t, decoded.IsCommand())

	msg, err := decoded.Decode()
	require.NoError(t, err)
	out, ok := msg.(*VisionBlocks)
	require.True(t, ok)
	require.Len(t, out.Blocks, 2)
	assert.Equal(t, int32(-90), out.Blocks[1].Angle)
	assert.True(t, out.Blocks[1].ColorCoded)
	assert.Equal(t, uint32(10), out.Blocks[0].Area)
}

func TestTypedKinds(t *testing.T) {
	tests := []struct {
		msg     SerializableMessage
		command bool
		reply   bool
	}{
		{&VisionStatusQuery{}, true, false},
		{&VisionStatusReply{}, true, true},
		{&VisionSetLED{R: 1}, true, false},
		{&DriveSet{Forward: 0.5}, true, false},
		{&DriveStatusReply{}, true, true},
		{&CommandOK{}, true, true},
		{&CommandErr{Message: "x"}, true, true},
		{&VisionStatus{}, false, false},
		{&DriveStatus{}, false, false},
	}
	for _, test := range tests {
		typed, err := TypedFrom(test.msg)
		require.NoError(t, err)
		assert.Equal(t, test.command, typed.IsCommand(), "%T", test.msg)
		assert.Equal(t, test.reply, typed.IsReply(), "%T", test.msg)
		assert.Equal(t, !test.command, typed.IsEvent(), "%T", test.msg)
	}
}

func TestTypedDriveFloats(t *testing.T) {
	typed, err := TypedFrom(&DriveSet{Forward: 0.5, Strafe: -0.25, Twist: 1})
	require.NoError(t, err)
	msg, err := typed.Decode()
	require.NoError(t, err)
	assert.Equal(t, &DriveSet{Forward: 0.5, Strafe: -0.25, Twist: 1}, msg)
}

func TestTypedUnknown(t *testing.T) {
	typed := &Typed{TypeID: GroupCustom | 0x7777}
	_, err := typed.Decode()
	require.Error(t, err)
	_, ok := err.(*ErrUnknownType)
	assert.True(t, ok)

	_, err = TypedFrom(nil)
	assert.Equal(t, ErrNotSerializable, err)
}

func TestTypeIDsUnique(t *testing.T) {
	seen := make(map[uint32]bool)
	for id, msg := range MessageTypes {
		require.False(t, seen[id])
		seen[id] = true
		require.Equal(t, id, msg.NewMessage().(SerializableMessage).TypeID())
	}
}
