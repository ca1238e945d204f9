package sqlcraft

// Op defines the type and keyword of a condition operator.
type Op struct {
	Type    OpType
	Keyword string
}

type OpType uint8

const (
	OpBinary OpType = iota // binary operators, e.g. =, >, <
	OpUnary                // unary operators, e.g. IS NULL
)

var (
	OpEq      = Op{Type: OpBinary, Keyword: "="}
	OpNotEq   = Op{Type: OpBinary, Keyword: "<>"}
	OpGt      = Op{Type: OpBinary, Keyword: ">"}
	OpGtEq    = Op{Type: OpBinary, Keyword: ">="}
	OpLt      = Op{Type: OpBinary, Keyword: "<"}
	OpLtEq    = Op{Type: OpBinary, Keyword: "<="}
	OpLike    = Op{Type: OpBinary, Keyword: "LIKE"}
	OpIsNull  = Op{Type: OpUnary, Keyword: "IS NULL"}
	OpNotNull = Op{Type: OpUnary, Keyword: "IS NOT NULL"}
)

// NumericOperation is an arithmetic self-assignment operator used by
// Update.AdjustID.
type NumericOperation string

const (
	Add      NumericOperation = "+"
	Subtract NumericOperation = "-"
	Multiply NumericOperation = "*"
	Divide   NumericOperation = "/"
)
