package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/pixy.go/pkg/framework"
)

// VisionStatusQuery queries the link status of the vision sensor.
type VisionStatusQuery struct {
}

// NewMessage implements Message.
func (m *VisionStatusQuery) NewMessage() fx.Message { return &VisionStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *VisionStatusQuery) TypeID() uint32 { return VisionStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *VisionStatusQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *VisionStatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *VisionStatusQuery) Reset() { *m = VisionStatusQuery{} }

// String implements proto.Message.
func (m *VisionStatusQuery) String() string { return proto.CompactTextString(m) }

// VisionStatusReply is the response for VisionStatusQuery.
type VisionStatusReply struct {
	Status *VisionStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *VisionStatusReply) NewMessage() fx.Message { return &VisionStatusReply{} }

// TypeID implements SerializableMessage.
func (m *VisionStatusReply) TypeID() uint32 { return VisionStatusReplyTypeID }

// Serializable implements SerializableMessage.
func (m *VisionStatusReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *VisionStatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *VisionStatusReply) Reset() { *m = VisionStatusReply{} }

// String implements proto.Message.
func (m *VisionStatusReply) String() string { return proto.CompactTextString(m) }

// VisionStatus is an Event message reflecting the link status.
type VisionStatus struct {
	Synced               bool   `protobuf:"varint,1,opt,name=synced,proto3" json:"synced,omitempty"`
	SyncErrors           uint32 `protobuf:"varint,2,opt,name=sync_errors,proto3" json:"sync_errors,omitempty"`
	ChecksumErrors       uint32 `protobuf:"varint,3,opt,name=checksum_errors,proto3" json:"checksum_errors,omitempty"`
	MillisSinceLastBlock uint32 `protobuf:"varint,4,opt,name=millis_since_last_block,proto3" json:"millis_since_last_block,omitempty"`
	TransportErrors      uint32 `protobuf:"varint,5,opt,name=transport_errors,proto3" json:"transport_errors,omitempty"`
	Blocks               uint32 `protobuf:"varint,6,opt,name=blocks,proto3" json:"blocks,omitempty"`
}

// NewMessage implements Message.
func (m *VisionStatus) NewMessage() fx.Message { return &VisionStatus{} }

// TypeID implements SerializableMessage.
func (m *VisionStatus) TypeID() uint32 { return VisionStatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *VisionStatus) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *VisionStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *VisionStatus) Reset() { *m = VisionStatus{} }

// String implements proto.Message.
func (m *VisionStatus) String() string { return proto.CompactTextString(m) }

// VisionBlock is a detected object.
type VisionBlock struct {
	Signature  uint32 `protobuf:"varint,1,opt,name=signature,proto3" json:"signature,omitempty"`
	X          uint32 `protobuf:"varint,2,opt,name=x,proto3" json:"x,omitempty"`
	Y          uint32 `protobuf:"varint,3,opt,name=y,proto3" json:"y,omitempty"`
	Width      uint32 `protobuf:"varint,4,opt,name=width,proto3" json:"width,omitempty"`
	Height     uint32 `protobuf:"varint,5,opt,name=height,proto3" json:"height,omitempty"`
	Angle      int32  `protobuf:"zigzag32,6,opt,name=angle,proto3" json:"angle,omitempty"`
	Area       uint32 `protobuf:"varint,7,opt,name=area,proto3" json:"area,omitempty"`
	ColorCoded bool   `protobuf:"varint,8,opt,name=color_coded,proto3" json:"color_coded,omitempty"`
}

// VisionBlocksQuery queries the most recently decoded blocks.
type VisionBlocksQuery struct {
}

// NewMessage implements Message.
func (m *VisionBlocksQuery) NewMessage() fx.Message { return &VisionBlocksQuery{} }

// TypeID implements SerializableMessage.
func (m *VisionBlocksQuery) TypeID() uint32 { return VisionBlocksQueryTypeID }

// Serializable implements SerializableMessage.
func (m *VisionBlocksQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *VisionBlocksQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *VisionBlocksQuery) Reset() { *m = VisionBlocksQuery{} }

// String implements proto.Message.
func (m *VisionBlocksQuery) String() string { return proto.CompactTextString(m) }

// VisionBlocksReply is the response for VisionBlocksQuery.
type VisionBlocksReply struct {
	Blocks []*VisionBlock `protobuf:"bytes,1,rep,name=blocks,proto3" json:"blocks,omitempty"`
}

// NewMessage implements Message.
func (m *VisionBlocksReply) NewMessage() fx.Message { return &VisionBlocksReply{} }

// TypeID implements SerializableMessage.
func (m *VisionBlocksReply) TypeID() uint32 { return VisionBlocksReplyTypeID }

// Serializable implements SerializableMessage.
func (m *VisionBlocksReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *VisionBlocksReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *VisionBlocksReply) Reset() { *m = VisionBlocksReply{} }

// String implements proto.Message.
func (m *VisionBlocksReply) String() string { return proto.CompactTextString(m) }

// VisionBlocks is an Event message carrying blocks decoded in one iteration.
type VisionBlocks struct {
	Blocks []*VisionBlock `protobuf:"bytes,1,rep,name=blocks,proto3" json:"blocks,omitempty"`
}

// NewMessage implements Message.
func (m *VisionBlocks) NewMessage() fx.Message { return &VisionBlocks{} }

// TypeID implements SerializableMessage.
func (m *VisionBlocks) TypeID() uint32 { return VisionBlocksEventTypeID }

// Serializable implements SerializableMessage.
func (m *VisionBlocks) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *VisionBlocks) ProtoMessage() {}

// Reset implements proto.Message.
func (m *VisionBlocks) Reset() { *m = VisionBlocks{} }

// String implements proto.Message.
func (m *VisionBlocks) String() string { return proto.CompactTextString(m) }

// VisionSetLED sets the RGB LED of the sensor.
type VisionSetLED struct {
	R uint32 `protobuf:"varint,1,opt,name=r,proto3" json:"r,omitempty"`
	G uint32 `protobuf:"varint,2,opt,name=g,proto3" json:"g,omitempty"`
	B uint32 `protobuf:"varint,3,opt,name=b,proto3" json:"b,omitempty"`
}

// NewMessage implements Message.
func (m *VisionSetLED) NewMessage() fx.Message { return &VisionSetLED{} }

// TypeID implements SerializableMessage.
func (m *VisionSetLED) TypeID() uint32 { return VisionSetLEDTypeID }

// Serializable implements SerializableMessage.
func (m *VisionSetLED) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *VisionSetLED) ProtoMessage() {}

// Reset implements proto.Message.
func (m *VisionSetLED) Reset() { *m = VisionSetLED{} }

// String implements proto.Message.
func (m *VisionSetLED) String() string { return proto.CompactTextString(m) }

// VisionSetBrightness sets the camera brightness.
type VisionSetBrightness struct {
	Value uint32 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
}

// NewMessage implements Message.
func (m *VisionSetBrightness) NewMessage() fx.Message { return &VisionSetBrightness{} }

// TypeID implements SerializableMessage.
func (m *VisionSetBrightness) TypeID() uint32 { return VisionSetBrightnessTypeID }

// Serializable implements SerializableMessage.
func (m *VisionSetBrightness) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *VisionSetBrightness) ProtoMessage() {}

// Reset implements proto.Message.
func (m *VisionSetBrightness) Reset() { *m = VisionSetBrightness{} }

// String implements proto.Message.
func (m *VisionSetBrightness) String() string { return proto.CompactTextString(m) }

// TypeIDs
const (
	VisionStatusEventTypeID   uint32 = GroupVision | TypeIDKindEvent | 0x0000
	VisionBlocksEventTypeID   uint32 = GroupVision | TypeIDKindEvent | 0x0001
	VisionStatusQueryTypeID   uint32 = GroupVision | 0x0000
	VisionStatusReplyTypeID   uint32 = VisionStatusQueryTypeID | TypeIDMaskReply
	VisionBlocksQueryTypeID   uint32 = GroupVision | 0x0001
	VisionBlocksReplyTypeID   uint32 = VisionBlocksQueryTypeID | TypeIDMaskReply
	VisionSetLEDTypeID        uint32 = GroupVision | 0x0002
	VisionSetBrightnessTypeID uint32 = GroupVision | 0x0003
)

func init() {
	MessageTypes[VisionStatusEventTypeID] = (*VisionStatus)(nil)
	MessageTypes[VisionBlocksEventTypeID] = (*VisionBlocks)(nil)
	MessageTypes[VisionStatusQueryTypeID] = (*VisionStatusQuery)(nil)
	MessageTypes[VisionStatusReplyTypeID] = (*VisionStatusReply)(nil)
	MessageTypes[VisionBlocksQueryTypeID] = (*VisionBlocksQuery)(nil)
	MessageTypes[VisionBlocksReplyTypeID] = (*VisionBlocksReply)(nil)
	MessageTypes[VisionSetLEDTypeID] = (*VisionSetLED)(nil)
	MessageTypes[VisionSetBrightnessTypeID] = (*VisionSetBrightness)(nil)
}
