// Package addressing maps ledger state addresses to the certificate registry
// namespace and its entity families. Addresses are 70 hex characters: a
// 6-character family namespace prefix, a 2-character entity tag, and a
// 62-character entity identifier hash.
package addressing

import (
	"crypto/sha256"
	"encoding/hex"
)

// FamilyName is the transaction family this subscriber projects.
const FamilyName = "certificate_registry"

// AddressSpace classifies a state address into one of the entity families
// stored under the certificate registry namespace.
type AddressSpace int

const (
	// Unrecognized marks an address inside the namespace whose entity tag
	// matches no known family. The namespace filter has already excluded
	// foreign data, so this indicates schema drift, never routine traffic.
	Unrecognized AddressSpace = iota
	Agent
	Certificate
	Organization
	Standard
	Request
)

func (s AddressSpace) String() string {
	switch s {
	case Agent:
		return "agent"
	case Certificate:
		return "certificate"
	case Organization:
		return "organization"
	case Standard:
		return "standard"
	case Request:
		return "request"
	}
	return "unrecognized"
}

const (
	agentTag        = "00"
	certificateTag  = "01"
	organizationTag = "02"
	standardTag     = "03"
	requestTag      = "04"
)

var familyPrefix = func() string {
	sum := sha256.Sum256([]byte(FamilyName))
	return hex.EncodeToString(sum[:])[:6]
}()

// Prefix returns the 6-character namespace prefix owned by the certificate
// registry transaction family.
func Prefix() string {
	return familyPrefix
}

// AddressSpaceOf classifies an address by its entity tag. It is a pure
// function of the address; addresses shorter than the prefix plus tag, or
// outside the family namespace, classify as Unrecognized.
func AddressSpaceOf(address string) AddressSpace {
	if len(address) < 8 || address[:6] != familyPrefix {
		return Unrecognized
	}
	switch address[6:8] {
	case agentTag:
		return Agent
	case certificateTag:
		return Certificate
	case organizationTag:
		return Organization
	case standardTag:
		return Standard
	case requestTag:
		return Request
	}
	return Unrecognized
}
