// Package server はRADIUSデータグラムを受信するUDPサーバーを提供する。
package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/oyaguma3/radius-dissector-poc/internal/config"
)

// DatagramHandler は受信した1データグラムを処理するインターフェース
type DatagramHandler interface {
	HandleDatagram(ctx context.Context, srcIP string, buf []byte)
}

// Server はUDP受信ループのラッパー。
// デコードは受信スレッド上で同期実行される（パケット単位で完結）。
type Server struct {
	addr    string
	handler DatagramHandler
	conn    *net.UDPConn
}

// NewServer は新しいServerを生成する
func NewServer(addr string, handler DatagramHandler) *Server {
	return &Server{addr: addr, handler: handler}
}

// Listen はUDPソケットをバインドする
func (s *Server) Listen() error {
	udpAddr, err := net.ResolveUDPAddr("udp", s.addr)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", s.addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.conn = conn
	return nil
}

// Addr はバインド済みのローカルアドレスを返す（Listen前はnil）
func (s *Server) Addr() net.Addr {
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Serve はUDP受信ループを実行する。
// Shutdownによる停止時はnilを返す。
func (s *Server) Serve() error {
	buf := make([]byte, config.MaxDatagramSize)
	for {
		n, raddr, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read udp: %w", err)
		}

		// ハンドラへ渡すバッファは受信ごとに独立させる
		pkt := make([]byte, n)
		copy(pkt, buf[:n])

		s.handler.HandleDatagram(context.Background(), raddr.IP.String(), pkt)
	}
}

// ListenAndServe はバインドと受信ループをまとめて実行する
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown は受信ループを停止する
func (s *Server) Shutdown(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
