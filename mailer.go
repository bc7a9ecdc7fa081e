package main

import (
	"net"
	"time"

	"go.uber.org/zap"
)

// mailer verifies the outbound-mail transport is reachable. Verification is
// best-effort and runs after the server starts listening; a failure never
// affects request handling.
type mailer struct {
	addr string
	log  *zap.Logger
}

func newMailer(addr string, log *zap.Logger) *mailer {
	return &mailer{addr: addr, log: log}
}

func (m *mailer) verify() {
	if m.addr == "" {
		m.log.Info("mailer verify skipped (SMTP_ADDR not set)")
		return
	}
	conn, err := net.DialTimeout("tcp", m.addr, 3*time.Second)
	if err != nil {
		m.log.Warn("mailer verify failed", zap.String("addr", m.addr), zap.Error(err))
		return
	}
	_ = conn.Close()
	m.log.Info("mailer verified", zap.String("addr", m.addr))
}
