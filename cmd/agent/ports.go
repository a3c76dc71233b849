package main

import (
	"fmt"
	"strconv"
	"strings"
)

// portsValue 是 pflag.Value，解析 "80,8080" 这样的端口列表。
type portsValue struct {
	ports *[]uint16
}

func newPortsValue(p *[]uint16) *portsValue {
	return &portsValue{ports: p}
}

func (v *portsValue) String() string {
	if v.ports == nil {
		return ""
	}
	s := make([]string, len(*v.ports))
	for i, p := range *v.ports {
		s[i] = strconv.Itoa(int(p))
	}
	return strings.Join(s, ",")
}

func (v *portsValue) Set(s string) error {
	var out []uint16
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.ParseUint(f, 10, 16)
		if err != nil || n == 0 {
			return fmt.Errorf("端口无效：%q", f)
		}
		out = append(out, uint16(n))
	}
	if len(out) == 0 {
		return fmt.Errorf("端口列表为空")
	}
	*v.ports = out
	return nil
}

func (v *portsValue) Type() string {
	return "ports"
}
