package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/pixy.go/pkg/framework"
)

// DriveSet sets the desired motion of the mecanum base.
// Values are normalized to [-1, 1] before scaling.
type DriveSet struct {
	Forward float32 `protobuf:"fixed32,1,opt,name=forward,proto3" json:"forward,omitempty"`
	Strafe  float32 `protobuf:"fixed32,2,opt,name=strafe,proto3" json:"strafe,omitempty"`
	Twist   float32 `protobuf:"fixed32,3,opt,name=twist,proto3" json:"twist,omitempty"`
}

// NewMessage implements Message.
func (m *DriveSet) NewMessage() fx.Message { return &DriveSet{} }

// TypeID implements SerializableMessage.
func (m *DriveSet) TypeID() uint32 { return DriveSetTypeID }

// Serializable implements SerializableMessage.
func (m *DriveSet) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *DriveSet) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DriveSet) Reset() { *m = DriveSet{} }

// String implements proto.Message.
func (m *DriveSet) String() string { return proto.CompactTextString(m) }

// BacklightSet turns the display backlight on or off.
type BacklightSet struct {
	On bool `protobuf:"varint,1,opt,name=on,proto3" json:"on,omitempty"`
}

// NewMessage implements Message.
func (m *BacklightSet) NewMessage() fx.Message { return &BacklightSet{} }

// TypeID implements SerializableMessage.
func (m *BacklightSet) TypeID() uint32 { return BacklightSetTypeID }

// Serializable implements SerializableMessage.
func (m *BacklightSet) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *BacklightSet) ProtoMessage() {}

// Reset implements proto.Message.
func (m *BacklightSet) Reset() { *m = BacklightSet{} }

// String implements proto.Message.
func (m *BacklightSet) String() string { return proto.CompactTextString(m) }

// DriveStatusQuery queries the drive status.
type DriveStatusQuery struct {
}

// NewMessage implements Message.
func (m *DriveStatusQuery) NewMessage() fx.Message { return &DriveStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *DriveStatusQuery) TypeID() uint32 { return DriveStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *DriveStatusQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *DriveStatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DriveStatusQuery) Reset() { *m = DriveStatusQuery{} }

// String implements proto.Message.
func (m *DriveStatusQuery) String() string { return proto.CompactTextString(m) }

// DriveStatusReply is the response for DriveStatusQuery.
type DriveStatusReply struct {
	Status *DriveStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *DriveStatusReply) NewMessage() fx.Message { return &DriveStatusReply{} }

// TypeID implements SerializableMessage.
func (m *DriveStatusReply) TypeID() uint32 { return DriveStatusReplyTypeID }

// Serializable implements SerializableMessage.
func (m *DriveStatusReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *DriveStatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DriveStatusReply) Reset() { *m = DriveStatusReply{} }

// String implements proto.Message.
func (m *DriveStatusReply) String() string { return proto.CompactTextString(m) }

// WheelOutputs are the per-wheel motor outputs in [-1, 1].
type WheelOutputs struct {
	LeftFront  float32 `protobuf:"fixed32,1,opt,name=left_front,proto3" json:"left_front,omitempty"`
	LeftRear   float32 `protobuf:"fixed32,2,opt,name=left_rear,proto3" json:"left_rear,omitempty"`
	RightFront float32 `protobuf:"fixed32,3,opt,name=right_front,proto3" json:"right_front,omitempty"`
	RightRear  float32 `protobuf:"fixed32,4,opt,name=right_rear,proto3" json:"right_rear,omitempty"`
}

// DriveStatus is an Event message reflecting the drive state.
type DriveStatus struct {
	Outputs    *WheelOutputs `protobuf:"bytes,1,opt,name=outputs,proto3" json:"outputs,omitempty"`
	LowBattery bool          `protobuf:"varint,2,opt,name=low_battery,proto3" json:"low_battery,omitempty"`
	Backlight  bool          `protobuf:"varint,3,opt,name=backlight,proto3" json:"backlight,omitempty"`
	Stopped    bool          `protobuf:"varint,4,opt,name=stopped,proto3" json:"stopped,omitempty"`
}

// NewMessage implements Message.
func (m *DriveStatus) NewMessage() fx.Message { return &DriveStatus{} }

// TypeID implements SerializableMessage.
func (m *DriveStatus) TypeID() uint32 { return DriveStatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *DriveStatus) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *DriveStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DriveStatus) Reset() { *m = DriveStatus{} }

// String implements proto.Message.
func (m *DriveStatus) String() string { return proto.CompactTextString(m) }

// TypeIDs
const (
	DriveStatusEventTypeID uint32 = GroupDrive | TypeIDKindEvent | 0x0000
	DriveStatusQueryTypeID uint32 = GroupDrive | 0x0000
	DriveStatusReplyTypeID uint32 = DriveStatusQueryTypeID | TypeIDMaskReply
	DriveSetTypeID         uint32 = GroupDrive | 0x0001
	BacklightSetTypeID     uint32 = GroupDrive | 0x0002
)

func init() {
	MessageTypes[DriveStatusEventTypeID] = (*DriveStatus)(nil)
	MessageTypes[DriveStatusQueryTypeID] = (*DriveStatusQuery)(nil)
	MessageTypes[DriveStatusReplyTypeID] = (*DriveStatusReply)(nil)
	MessageTypes[DriveSetTypeID] = (*DriveSet)(nil)
	MessageTypes[BacklightSetTypeID] = (*BacklightSet)(nil)
}
