package mintgate

import "github.com/xraph/mintgate/id"

// ID is the primary identifier type for all Mintgate entities.
type ID = id.ID

// Prefix identifies the entity type encoded in a TypeID.
type Prefix = id.Prefix
