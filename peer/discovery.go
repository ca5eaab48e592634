// Package peer lets shells find a serving atlas on the local network via
// a multicast heartbeat.
package peer

import (
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	address   = "224.0.0.1:5353"
	maxSize   = 1024
	heartbeat = "ATLAS"
)

func FindServer(timeout time.Duration) (net.IP, error) {
	addr, err := net.ResolveUDPAddr("udp4", address)
	if err != nil {
		return net.IPv4zero, err
	}

	socket, err := net.ListenMulticastUDP("udp4", nil, addr)
	if err != nil {
		return net.IPv4zero, err
	}
	defer socket.Close()
	socket.SetReadDeadline(time.Now().Add(timeout))

	socket.SetReadBuffer(maxSize)
	b := make([]byte, maxSize)
	if _, src, err := socket.ReadFromUDP(b); err != nil {
		return net.IPv4zero, err
	} else {
		return src.IP, nil
	}
}

// Announce broadcasts the heartbeat once a second. It never returns and
// is meant to run on its own goroutine next to the server.
func Announce() {
	addr, err := net.ResolveUDPAddr("udp4", address)
	if err != nil {
		logrus.WithError(err).Warn("peer announcements disabled")
		return
	}

	connection, err := net.DialUDP("udp4", nil, addr)
	if err != nil {
		logrus.WithError(err).Warn("peer announcements disabled")
		return
	}

	ticker := time.Tick(time.Second)
	for {
		<-ticker
		if _, err := connection.Write([]byte(heartbeat)); err != nil {
			logrus.WithError(err).Debug("peer announcement failed")
		}
	}
}
