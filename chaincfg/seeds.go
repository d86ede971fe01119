// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/rand"
	"net"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/multiformats/go-multiaddr"
)

// oneWeek is the width of the window seed timestamps are spread over.
const oneWeek = 7 * 24 * time.Hour

// SeedSpec is the compact form of a fixed seed node: a 16-byte IPv6 address
// (IPv4 nodes use the IPv4-mapped form) and a port.
type SeedSpec struct {
	Addr [16]byte
	Port uint16
}

// IP returns the address of the seed.
func (s SeedSpec) IP() net.IP {
	ip := make(net.IP, net.IPv6len)
	copy(ip, s.Addr[:])
	return ip
}

// String returns the seed in host:port form.
func (s SeedSpec) String() string {
	return net.JoinHostPort(s.IP().String(), strconv.Itoa(int(s.Port)))
}

// MaterializeSeeds expands compact seed records into peer addresses.  Every
// address is given a last seen time between one and two weeks before now so
// that seed peers do not all look equally fresh.  A record with a zero port
// takes defaultPort.  A nil rng uses a source seeded from now.
func MaterializeSeeds(specs []SeedSpec, defaultPort uint16, now time.Time,
	rng *rand.Rand) []*wire.NetAddress {

	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	weekSeconds := int64(oneWeek / time.Second)
	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		port := spec.Port
		if port == 0 {
			port = defaultPort
		}
		offset := time.Duration(rng.Int63n(weekSeconds)) * time.Second
		lastSeen := now.Add(-offset - oneWeek)
		addrs = append(addrs, wire.NewNetAddressTimestamp(lastSeen,
			wire.SFNodeNetwork, spec.IP(), port))
	}
	return addrs
}

// DefaultPortNumber returns DefaultPort as a number.  It panics if the port
// literal is not a valid port.
func (p *Params) DefaultPortNumber() uint16 {
	port, err := strconv.ParseUint(p.DefaultPort, 10, 16)
	if err != nil {
		panic(fmt.Sprintf("%s: invalid default port %q: %v", p.Name,
			p.DefaultPort, err))
	}
	return uint16(port)
}

// SeedAddresses materializes the fixed seeds of the network.
func (p *Params) SeedAddresses(now time.Time, rng *rand.Rand) []*wire.NetAddress {
	return MaterializeSeeds(p.FixedSeeds, p.DefaultPortNumber(), now, rng)
}

// SeedMultiaddr renders a peer address as a multiaddr of the form
// /ip4/<addr>/tcp/<port> or /ip6/<addr>/tcp/<port>.
func SeedMultiaddr(na *wire.NetAddress) (multiaddr.Multiaddr, error) {
	proto := "ip6"
	ip := na.IP
	if ip4 := ip.To4(); ip4 != nil {
		proto, ip = "ip4", ip4
	}
	return multiaddr.NewMultiaddr(fmt.Sprintf("/%s/%s/tcp/%d", proto, ip,
		na.Port))
}
