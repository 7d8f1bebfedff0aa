package handler

import (
	"github.com/golang/protobuf/proto"

	"github.com/target/consensource-sds/addressing"
	serrors "github.com/target/consensource-sds/errors"
	"github.com/target/consensource-sds/protobuf/agent_pb2"
	"github.com/target/consensource-sds/protobuf/certificate_pb2"
	"github.com/target/consensource-sds/protobuf/organization_pb2"
	"github.com/target/consensource-sds/protobuf/request_pb2"
	"github.com/target/consensource-sds/protobuf/standard_pb2"
	"github.com/target/consensource-sds/storage"
)

// TransformFunc converts one state value into the operation for its entity
// family, stamping every produced record with the observing block number and
// the open end sentinel.
type TransformFunc func(blockNum int64, value []byte) (storage.Operation, error)

// transforms is the registry mapping each entity family to its transform.
// One entry per family; addresses outside the map fail the frame.
var transforms = map[addressing.AddressSpace]TransformFunc{
	addressing.Organization: transformOrganization,
	addressing.Agent:        transformAgent,
	addressing.Certificate:  transformCertificate,
	addressing.Request:      transformRequest,
	addressing.Standard:     transformStandard,
}

// mapEntries applies a per-entry at-block function over a container's
// entries, preserving order.
func mapEntries[M, R any](entries []M, blockNum int64, atBlock func(int64, M) R) []R {
	records := make([]R, 0, len(entries))
	for _, entry := range entries {
		records = append(records, atBlock(blockNum, entry))
	}
	return records
}

// optionalString converts protobuf's empty-string default to an absent
// column value.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func transformOrganization(blockNum int64, value []byte) (storage.Operation, error) {
	var container organization_pb2.OrganizationContainer
	if err := proto.Unmarshal(value, &container); err != nil {
		return nil, serrors.ParseWrap(err)
	}
	return storage.CreateOrganization{
		Organizations: mapEntries(container.GetEntries(), blockNum, organizationAtBlock),
	}, nil
}

func organizationAtBlock(blockNum int64, org *organization_pb2.Organization) storage.OrganizationRecord {
	record := storage.OrganizationRecord{
		Organization: storage.Organization{
			OrganizationID:   org.GetId(),
			Name:             org.GetName(),
			OrganizationType: organizationType(org.GetOrganizationType()),
			StartBlockNum:    blockNum,
			EndBlockNum:      storage.MaxBlockNum,
		},
		Authorizations: make([]storage.Authorization, 0, len(org.GetAuthorizations())),
		Contacts:       make([]storage.Contact, 0, len(org.GetContacts())),
	}

	// Accreditations exist only for certifying bodies: a certifying body
	// without accreditations gets an empty slice, every other type gets nil.
	if org.GetOrganizationType() == organization_pb2.Organization_CERTIFYING_BODY {
		accreditations := org.GetCertifyingBodyDetails().GetAccreditations()
		record.Accreditations = make([]storage.Accreditation, 0, len(accreditations))
		for _, acc := range accreditations {
			record.Accreditations = append(record.Accreditations, storage.Accreditation{
				OrganizationID:  org.GetId(),
				StandardID:      acc.GetStandardId(),
				StandardVersion: acc.GetStandardVersion(),
				AccreditorID:    acc.GetAccreditorId(),
				ValidFrom:       int64(acc.GetValidFrom()),
				ValidTo:         int64(acc.GetValidTo()),
				StartBlockNum:   blockNum,
				EndBlockNum:     storage.MaxBlockNum,
			})
		}
	}

	if org.GetOrganizationType() == organization_pb2.Organization_FACTORY {
		if addr := org.GetFactoryDetails().GetAddress(); addr != nil {
			record.Address = &storage.Address{
				OrganizationID: org.GetId(),
				StreetLine1:    addr.GetStreetLine_1(),
				StreetLine2:    optionalString(addr.GetStreetLine_2()),
				City:           addr.GetCity(),
				StateProvince:  optionalString(addr.GetStateProvince()),
				Country:        addr.GetCountry(),
				PostalCode:     optionalString(addr.GetPostalCode()),
				StartBlockNum:  blockNum,
				EndBlockNum:    storage.MaxBlockNum,
			}
		}
	}

	for _, auth := range org.GetAuthorizations() {
		record.Authorizations = append(record.Authorizations, storage.Authorization{
			OrganizationID: org.GetId(),
			PublicKey:      auth.GetPublicKey(),
			Role:           role(auth.GetRole()),
			StartBlockNum:  blockNum,
			EndBlockNum:    storage.MaxBlockNum,
		})
	}

	for _, contact := range org.GetContacts() {
		record.Contacts = append(record.Contacts, storage.Contact{
			OrganizationID: org.GetId(),
			Name:           contact.GetName(),
			PhoneNumber:    contact.GetPhoneNumber(),
			LanguageCode:   contact.GetLanguageCode(),
			StartBlockNum:  blockNum,
			EndBlockNum:    storage.MaxBlockNum,
		})
	}
	return record
}

func organizationType(t organization_pb2.Organization_Type) storage.OrganizationType {
	switch t {
	case organization_pb2.Organization_CERTIFYING_BODY:
		return storage.OrgTypeCertifyingBody
	case organization_pb2.Organization_STANDARDS_BODY:
		return storage.OrgTypeStandardsBody
	case organization_pb2.Organization_FACTORY:
		return storage.OrgTypeFactory
	}
	return storage.OrgTypeUnset
}

func role(r organization_pb2.Organization_Authorization_Role) storage.Role {
	switch r {
	case organization_pb2.Organization_Authorization_ADMIN:
		return storage.RoleAdmin
	case organization_pb2.Organization_Authorization_TRANSACTOR:
		return storage.RoleTransactor
	}
	return storage.RoleUnset
}

func transformAgent(blockNum int64, value []byte) (storage.Operation, error) {
	var container agent_pb2.AgentContainer
	if err := proto.Unmarshal(value, &container); err != nil {
		return nil, serrors.ParseWrap(err)
	}
	return storage.CreateAgent{
		Agents: mapEntries(container.GetEntries(), blockNum, agentAtBlock),
	}, nil
}

func agentAtBlock(blockNum int64, agent *agent_pb2.Agent) storage.Agent {
	return storage.Agent{
		PublicKey:      agent.GetPublicKey(),
		OrganizationID: optionalString(agent.GetOrganizationId()),
		Name:           agent.GetName(),
		Timestamp:      int64(agent.GetTimestamp()),
		StartBlockNum:  blockNum,
		EndBlockNum:    storage.MaxBlockNum,
	}
}

func transformCertificate(blockNum int64, value []byte) (storage.Operation, error) {
	var container certificate_pb2.CertificateContainer
	if err := proto.Unmarshal(value, &container); err != nil {
		return nil, serrors.ParseWrap(err)
	}
	return storage.CreateCertificate{
		Certificates: mapEntries(container.GetEntries(), blockNum, certificateAtBlock),
	}, nil
}

func certificateAtBlock(blockNum int64, cert *certificate_pb2.Certificate) storage.Certificate {
	return storage.Certificate{
		CertificateID:    cert.GetId(),
		CertifyingBodyID: cert.GetCertifyingBodyId(),
		FactoryID:        cert.GetFactoryId(),
		StandardID:       cert.GetStandardId(),
		StandardVersion:  cert.GetStandardVersion(),
		ValidFrom:        int64(cert.GetValidFrom()),
		ValidTo:          int64(cert.GetValidTo()),
		StartBlockNum:    blockNum,
		EndBlockNum:      storage.MaxBlockNum,
	}
}

func transformRequest(blockNum int64, value []byte) (storage.Operation, error) {
	var container request_pb2.RequestContainer
	if err := proto.Unmarshal(value, &container); err != nil {
		return nil, serrors.ParseWrap(err)
	}
	return storage.CreateRequest{
		Requests: mapEntries(container.GetEntries(), blockNum, requestAtBlock),
	}, nil
}

func requestAtBlock(blockNum int64, req *request_pb2.Request) storage.Request {
	return storage.Request{
		RequestID:     req.GetId(),
		FactoryID:     req.GetFactoryId(),
		StandardID:    req.GetStandardId(),
		Status:        requestStatus(req.GetStatus()),
		RequestDate:   int64(req.GetRequestDate()),
		StartBlockNum: blockNum,
		EndBlockNum:   storage.MaxBlockNum,
	}
}

func requestStatus(s request_pb2.Request_Status) storage.RequestStatus {
	switch s {
	case request_pb2.Request_OPEN:
		return storage.RequestOpen
	case request_pb2.Request_IN_PROGRESS:
		return storage.RequestInProgress
	case request_pb2.Request_CLOSED:
		return storage.RequestClosed
	case request_pb2.Request_CERTIFIED:
		return storage.RequestCertified
	}
	return storage.RequestUnset
}

func transformStandard(blockNum int64, value []byte) (storage.Operation, error) {
	var container standard_pb2.StandardContainer
	if err := proto.Unmarshal(value, &container); err != nil {
		return nil, serrors.ParseWrap(err)
	}
	return storage.CreateStandard{
		Standards: mapEntries(container.GetEntries(), blockNum, standardAtBlock),
	}, nil
}

func standardAtBlock(blockNum int64, std *standard_pb2.Standard) storage.StandardRecord {
	record := storage.StandardRecord{
		Standard: storage.Standard{
			StandardID:     std.GetId(),
			OrganizationID: std.GetOrganizationId(),
			Name:           std.GetName(),
			StartBlockNum:  blockNum,
			EndBlockNum:    storage.MaxBlockNum,
		},
		Versions: make([]storage.StandardVersion, 0, len(std.GetVersions())),
	}
	for _, version := range std.GetVersions() {
		record.Versions = append(record.Versions, storage.StandardVersion{
			StandardID:    std.GetId(),
			Version:       version.GetVersion(),
			Link:          version.GetLink(),
			Description:   version.GetDescription(),
			ApprovalDate:  int64(version.GetApprovalDate()),
			StartBlockNum: blockNum,
			EndBlockNum:   storage.MaxBlockNum,
		})
	}
	return record
}
