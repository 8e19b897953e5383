package analysis

// 协议标签
const (
	LabelTCP     = "TCP"
	LabelUDP     = "UDP"
	LabelUnknown = "Unknown"
)

// Protocol 根据 socket 类型返回协议标签
func Protocol(socketType uint32) string {
	switch socketType {
	case SockStream:
		return LabelTCP
	case SockDgram:
		return LabelUDP
	default:
		return LabelUnknown
	}
}
