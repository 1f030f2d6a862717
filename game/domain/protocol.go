package domain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// バイトオーダー: リトルエンディアン
var byteOrder = binary.LittleEndian

const (
	ProtocolVersion = 1
	HeaderSize      = 10
)

// Header はメッセージヘッダー (10バイト)
//
//	version    u8   (1)
//	event      u8   (1)
//	seq        u16  (2)
//	length     u16  (2)  - ボディ長
//	timestamp  u32  (4)  - 送信時刻 (UnixMilli の下位32bit)
type Header struct {
	Version   uint8
	Event     EventCode
	Seq       uint16
	Length    uint16
	Timestamp uint32
}

// EventCode はワイヤ上のイベント種別です。
type EventCode uint8

const (
	EventCodeInfo      EventCode = 1
	EventCodeMove      EventCode = 2
	EventCodeGameState EventCode = 3
)

// EventName はイベントの名前です。コアはこの名前でイベントを振り分けます。
type EventName string

const (
	EventInfo      EventName = "info"
	EventMove      EventName = "move"
	EventGameState EventName = "game_state"
)

var eventCodes = map[EventName]EventCode{
	EventInfo:      EventCodeInfo,
	EventMove:      EventCodeMove,
	EventGameState: EventCodeGameState,
}

// Name はイベントコードに対応する名前を返します。
func (c EventCode) Name() (EventName, bool) {
	for name, code := range eventCodes {
		if code == c {
			return name, true
		}
	}
	return "", false
}

var (
	ErrInvalidHeaderSize = errors.New("invalid header size")
	ErrInvalidBodySize   = errors.New("invalid body size")
	ErrUnknownEvent      = errors.New("unknown event")
	ErrBodyTooLarge      = errors.New("body exceeds 65535 bytes")
)

// ParseHeader はバイト列からHeaderをパースする
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, ErrInvalidHeaderSize
	}
	return &Header{
		Version:   data[0],
		Event:     EventCode(data[1]),
		Seq:       byteOrder.Uint16(data[2:4]),
		Length:    byteOrder.Uint16(data[4:6]),
		Timestamp: byteOrder.Uint32(data[6:10]),
	}, nil
}

// Encode はHeaderをバイト列にエンコードする
func (h *Header) Encode() []byte {
	data := make([]byte, HeaderSize)
	data[0] = h.Version
	data[1] = byte(h.Event)
	byteOrder.PutUint16(data[2:4], h.Seq)
	byteOrder.PutUint16(data[4:6], h.Length)
	byteOrder.PutUint32(data[6:10], h.Timestamp)
	return data
}

// RosterEntry はルームに参加している1人分の情報です。
type RosterEntry struct {
	UID  string `msgpack:"uid"`
	Name string `msgpack:"name"`
}

// InfoPayload はロスター通知 (heartbeat) のボディです。
type InfoPayload struct {
	ClientList []RosterEntry `msgpack:"clientList"`
}

// MovePayload はクライアントからホストへの入力通知のボディです。
type MovePayload struct {
	UID    string   `msgpack:"uid"`
	Inputs []Action `msgpack:"inputs"`
}

// PlayerSnapshot はプレイヤー1人分のスナップショットです。
type PlayerSnapshot struct {
	UID    string  `msgpack:"uid"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Health int     `msgpack:"health"`
}

// NPCSnapshot は敵1体分のスナップショットです。
type NPCSnapshot struct {
	ID        uint64  `msgpack:"id"`
	Kind      string  `msgpack:"kind"`
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	Health    int     `msgpack:"health"`
	MaxHealth int     `msgpack:"maxHealth"`
	Facing    Facing  `msgpack:"facing"`
}

// BulletSnapshot は弾1発分のスナップショットです。
type BulletSnapshot struct {
	X          float64 `msgpack:"x"`
	Y          float64 `msgpack:"y"`
	EnemyFired bool    `msgpack:"enemy"`
}

// GameStatePayload はホストからクライアントへの状態通知のボディです。
type GameStatePayload struct {
	Players []PlayerSnapshot `msgpack:"players"`
	NPCs    []NPCSnapshot    `msgpack:"npcs"`
	Bullets []BulletSnapshot `msgpack:"bullets"`
	Score   int              `msgpack:"score"`
}

// Message はデコード済みの受信イベントです。
// Payload は *InfoPayload, *MovePayload, *GameStatePayload のいずれかです。
type Message struct {
	Event   EventName
	Seq     uint16
	Payload any
}

// EncodeMessage はイベントをヘッダー + msgpack ボディにエンコードする
func EncodeMessage(event EventName, seq uint16, now time.Time, payload any) ([]byte, error) {
	code, ok := eventCodes[event]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	body, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", event, err)
	}
	if len(body) > 0xFFFF {
		return nil, ErrBodyTooLarge
	}
	header := Header{
		Version:   ProtocolVersion,
		Event:     code,
		Seq:       seq,
		Length:    uint16(len(body)),
		Timestamp: uint32(now.UnixMilli() & 0xFFFFFFFF),
	}
	data := make([]byte, HeaderSize+len(body))
	copy(data[:HeaderSize], header.Encode())
	copy(data[HeaderSize:], body)
	return data, nil
}

// DecodeMessage はバイト列をパースし、イベント種別に応じたペイロードを返す
func DecodeMessage(data []byte) (Message, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return Message{}, err
	}
	body := data[HeaderSize:]
	if len(body) < int(header.Length) {
		return Message{}, ErrInvalidBodySize
	}
	body = body[:header.Length]

	name, ok := header.Event.Name()
	if !ok {
		return Message{}, fmt.Errorf("%w: code %d", ErrUnknownEvent, header.Event)
	}

	var payload any
	switch name {
	case EventInfo:
		payload = &InfoPayload{}
	case EventMove:
		payload = &MovePayload{}
	case EventGameState:
		payload = &GameStatePayload{}
	}
	if err := msgpack.Unmarshal(body, payload); err != nil {
		return Message{}, fmt.Errorf("decode %s body: %w", name, err)
	}
	return Message{Event: name, Seq: header.Seq, Payload: payload}, nil
}
