package repository

import (
	"os"
	"strconv"

	"autoservis_spz/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// patchExpr accumulates a SET update expression from the non-nil fields of
// a patch, with positional name/value placeholders.
type patchExpr struct {
	sets   []string
	values map[string]types.AttributeValue
	names  map[string]string
}

func newPatchExpr() *patchExpr {
	return &patchExpr{
		values: map[string]types.AttributeValue{},
		names:  map[string]string{},
	}
}

func (e *patchExpr) set(attr string, val types.AttributeValue) {
	p := strconv.Itoa(len(e.sets))
	e.sets = append(e.sets, "#f"+p+" = :v"+p)
	e.names["#f"+p] = attr
	e.values[":v"+p] = val
}

func (e *patchExpr) setString(attr string, v *string) {
	if v != nil {
		e.set(attr, &types.AttributeValueMemberS{Value: *v})
	}
}

func (e *patchExpr) setInt(attr string, v *int) {
	if v != nil {
		e.set(attr, &types.AttributeValueMemberN{Value: strconv.Itoa(*v)})
	}
}

func (e *patchExpr) setFlag(attr string, v *entities.Flag) {
	if v != nil {
		e.set(attr, &types.AttributeValueMemberS{Value: string(*v)})
	}
}

func (e *patchExpr) empty() bool {
	return len(e.sets) == 0
}

func (e *patchExpr) expression() string {
	expr := "SET " + e.sets[0]
	for _, s := range e.sets[1:] {
		expr += ", " + s
	}
	return expr
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
