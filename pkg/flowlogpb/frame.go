// Package flowlogpb 是 agent 上报 L7 会话日志用的 protobuf 格式，消息定义见
// flow_log.proto。
//
// 一次上报的 body 是若干条 varint 长度前缀的 AppProtoLogsData。
package flowlogpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative flow_log.proto

import "google.golang.org/protobuf/encoding/protowire"

const ContentType = "application/x-protobuf"

// AppendFrame 给一条编码好的 AppProtoLogsData 加上 varint 长度前缀。
func AppendFrame(b []byte, msg []byte) []byte {
	return protowire.AppendBytes(b, msg)
}

