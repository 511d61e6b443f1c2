package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

// GamepadStatusQuery queries the status.
type GamepadStatusQuery struct {
}

// NewMessage implements Message.
func (m *GamepadStatusQuery) NewMessage() fx.Message { return &GamepadStatusQuery{} }

// TypeID implements SerializableMessage.
func (m *GamepadStatusQuery) TypeID() uint32 { return GamepadStatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *GamepadStatusQuery) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *GamepadStatusQuery) ProtoMessage() {}

// Reset implements proto.Message.
func (m *GamepadStatusQuery) Reset() { *m = GamepadStatusQuery{} }

// String implements proto.Message.
func (m *GamepadStatusQuery) String() string { return proto.CompactTextString(m) }

// GamepadStatusReply is the response for GamepadStatusQuery.
type GamepadStatusReply struct {
	Status *GamepadStatus `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

// NewMessage implements Message.
func (m *GamepadStatusReply) NewMessage() fx.Message { return &GamepadStatusReply{} }

// TypeID implements SerializableMessage.
func (m *GamepadStatusReply) TypeID() uint32 { return GamepadStatusReplyTypeID }

// Serializable implements SerializableMessage.
func (m *GamepadStatusReply) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *GamepadStatusReply) ProtoMessage() {}

// Reset implements proto.Message.
func (m *GamepadStatusReply) Reset() { *m = GamepadStatusReply{} }

// String implements proto.Message.
func (m *GamepadStatusReply) String() string { return proto.CompactTextString(m) }

// GamepadConnect connects the gamepad to a drive controller.
// Empty Type and ID disconnect.
type GamepadConnect struct {
	RegistryURL string `protobuf:"bytes,1,opt,name=registry_url,proto3" json:"registry_url,omitempty"`
	Type        string `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	ID          string `protobuf:"bytes,3,opt,name=id,proto3" json:"id,omitempty"`
}

// NewMessage implements Message.
func (m *GamepadConnect) NewMessage() fx.Message { return &GamepadConnect{} }

// TypeID implements SerializableMessage.
func (m *GamepadConnect) TypeID() uint32 { return GamepadConnectTypeID }

// Serializable implements SerializableMessage.
func (m *GamepadConnect) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *GamepadConnect) ProtoMessage() {}

// Reset implements proto.Message.
func (m *GamepadConnect) Reset() { *m = GamepadConnect{} }

// String implements proto.Message.
func (m *GamepadConnect) String() string { return proto.CompactTextString(m) }

// GamepadStatus is an Event message reflecting gamepad status.
type GamepadStatus struct {
	Device     *GamepadDevice  `protobuf:"bytes,1,opt,name=device,proto3" json:"device,omitempty"`
	Connection *GamepadConnect `protobuf:"bytes,2,opt,name=connection,proto3" json:"connection,omitempty"`
	// Local is set when driving an in-process controller.
	Local bool `protobuf:"varint,3,opt,name=local,proto3" json:"local,omitempty"`
}

// NewMessage implements Message.
func (m *GamepadStatus) NewMessage() fx.Message { return &GamepadStatus{} }

// TypeID implements SerializableMessage.
func (m *GamepadStatus) TypeID() uint32 { return GamepadStatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *GamepadStatus) Serializable() proto.Message { return m }

// ProtoMessage implements proto.Message.
func (m *GamepadStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *GamepadStatus) Reset() { *m = GamepadStatus{} }

// String implements proto.Message.
func (m *GamepadStatus) String() string { return proto.CompactTextString(m) }

// GamepadDevice provides information of the gamepad device.
type GamepadDevice struct {
	Index   uint32 `protobuf:"varint,1,opt,name=index,proto3" json:"index,omitempty"`
	Name    string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Axes    uint32 `protobuf:"varint,3,opt,name=axes,proto3" json:"axes,omitempty"`
	Buttons uint32 `protobuf:"varint,4,opt,name=buttons,proto3" json:"buttons,omitempty"`
}

// GroupGamepad defines the custom group.
const GroupGamepad = msgs.GroupCustom

// TypeIDs
const (
	GamepadStatusEventTypeID uint32 = GroupGamepad | msgs.TypeIDKindEvent | 0x0000
	GamepadStatusQueryTypeID uint32 = GroupGamepad | 0x0000
	GamepadStatusReplyTypeID uint32 = GroupGamepad | msgs.TypeIDMaskReply | 0x0000
	GamepadConnectTypeID     uint32 = GroupGamepad | 0x0001
)

func init() {
	msgs.MessageTypes[GamepadStatusEventTypeID] = (*GamepadStatus)(nil)
	msgs.MessageTypes[GamepadStatusQueryTypeID] = (*GamepadStatusQuery)(nil)
	msgs.MessageTypes[GamepadStatusReplyTypeID] = (*GamepadStatusReply)(nil)
	msgs.MessageTypes[GamepadConnectTypeID] = (*GamepadConnect)(nil)
}
