package domain

// EmployeeStatus represents the lifecycle state of an employee record.
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive   EmployeeStatus = "INACTIVE"
	EmployeeStatusTerminated EmployeeStatus = "TERMINATED"
)

func (s EmployeeStatus) String() string { return string(s) }

func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusTerminated:
		return true
	}
	return false
}

// RevisionKind represents the kind of mutation a revision records.
type RevisionKind string

const (
	RevisionKindCreate RevisionKind = "CREATE"
	RevisionKindUpdate RevisionKind = "UPDATE"
	RevisionKindDelete RevisionKind = "DELETE"
)

func (k RevisionKind) String() string { return string(k) }

func (k RevisionKind) IsValid() bool {
	switch k {
	case RevisionKindCreate, RevisionKindUpdate, RevisionKindDelete:
		return true
	}
	return false
}

// Operation is the verb that triggered a mutation, recorded in revision
// metadata. Unlike RevisionKind it distinguishes status-only transitions.
type Operation string

const (
	OperationCreate    Operation = "CREATE"
	OperationUpdate    Operation = "UPDATE"
	OperationDelete    Operation = "DELETE"
	OperationSetStatus Operation = "SET_STATUS"
)

func (o Operation) String() string { return string(o) }

func (o Operation) IsValid() bool {
	switch o {
	case OperationCreate, OperationUpdate, OperationDelete, OperationSetStatus:
		return true
	}
	return false
}

// ActorRole represents the authorization level of the acting principal.
type ActorRole string

const (
	ActorRoleUser   ActorRole = "USER"
	ActorRoleAdmin  ActorRole = "ADMIN"
	ActorRoleSystem ActorRole = "SYSTEM"
)

func (r ActorRole) String() string { return string(r) }

func (r ActorRole) IsValid() bool {
	switch r {
	case ActorRoleUser, ActorRoleAdmin, ActorRoleSystem:
		return true
	}
	return false
}
