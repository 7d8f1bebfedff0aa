package storage

import "math"

// MaxBlockNum is the open-version sentinel. A record whose EndBlockNum equals
// MaxBlockNum is the authoritative value for its key; the store closes it by
// rewriting EndBlockNum to the superseding record's StartBlockNum. The
// subscriber core only ever writes the sentinel.
const MaxBlockNum int64 = math.MaxInt64

// Block identifies the ledger block whose commit produced a batch of state
// changes.
type Block struct {
	BlockNum int64
	BlockID  string
}

// OrganizationType mirrors the organization type enum stored in the database.
type OrganizationType string

const (
	OrgTypeCertifyingBody OrganizationType = "CERTIFYING_BODY"
	OrgTypeStandardsBody  OrganizationType = "STANDARDS_BODY"
	OrgTypeFactory        OrganizationType = "FACTORY"
	OrgTypeUnset          OrganizationType = "UNSET_TYPE"
)

// Role mirrors the authorization role enum stored in the database.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTransactor Role = "TRANSACTOR"
	RoleUnset      Role = "UNSET_ROLE"
)

// RequestStatus mirrors the certification request status enum stored in the
// database.
type RequestStatus string

const (
	RequestOpen       RequestStatus = "OPEN"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestClosed     RequestStatus = "CLOSED"
	RequestCertified  RequestStatus = "CERTIFIED"
	RequestUnset      RequestStatus = "UNSET_STATUS"
)

// Optional text columns are pointers: nil means absent, which the transforms
// distinguish from the empty string.

// Organization is one block-versioned organization row.
type Organization struct {
	OrganizationID   string
	Name             string
	OrganizationType OrganizationType
	StartBlockNum    int64
	EndBlockNum      int64
}

// Accreditation is one block-versioned accreditation row, owned by a
// certifying body.
type Accreditation struct {
	OrganizationID  string
	StandardID      string
	StandardVersion string
	AccreditorID    string
	ValidFrom       int64
	ValidTo         int64
	StartBlockNum   int64
	EndBlockNum     int64
}

// Address is one block-versioned factory address row.
type Address struct {
	OrganizationID string
	StreetLine1    string
	StreetLine2    *string
	City           string
	StateProvince  *string
	Country        string
	PostalCode     *string
	StartBlockNum  int64
	EndBlockNum    int64
}

// Authorization is one block-versioned authorization row.
type Authorization struct {
	OrganizationID string
	PublicKey      string
	Role           Role
	StartBlockNum  int64
	EndBlockNum    int64
}

// Contact is one block-versioned contact row.
type Contact struct {
	OrganizationID string
	Name           string
	PhoneNumber    string
	LanguageCode   string
	StartBlockNum  int64
	EndBlockNum    int64
}

// Agent is one block-versioned agent row.
type Agent struct {
	PublicKey      string
	OrganizationID *string
	Name           string
	Timestamp      int64
	StartBlockNum  int64
	EndBlockNum    int64
}

// Certificate is one block-versioned certificate row.
type Certificate struct {
	CertificateID    string
	CertifyingBodyID string
	FactoryID        string
	StandardID       string
	StandardVersion  string
	ValidFrom        int64
	ValidTo          int64
	StartBlockNum    int64
	EndBlockNum      int64
}

// Request is one block-versioned certification request row.
type Request struct {
	RequestID     string
	FactoryID     string
	StandardID    string
	Status        RequestStatus
	RequestDate   int64
	StartBlockNum int64
	EndBlockNum   int64
}

// Standard is one block-versioned standard row.
type Standard struct {
	StandardID     string
	OrganizationID string
	Name           string
	StartBlockNum  int64
	EndBlockNum    int64
}

// StandardVersion is one block-versioned standard version row.
type StandardVersion struct {
	StandardID    string
	Version       string
	Link          string
	Description   string
	ApprovalDate  int64
	StartBlockNum int64
	EndBlockNum   int64
}
