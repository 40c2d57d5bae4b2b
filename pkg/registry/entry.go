package registry

import (
	"net/netip"
	"time"

	"github.com/henderiw/interval/pkg/point/date"
	"github.com/henderiw/interval/pkg/point/decimal"
	"github.com/henderiw/interval/pkg/point/float"
	"github.com/henderiw/interval/pkg/point/integer"
	"github.com/henderiw/interval/pkg/point/ipaddr"
	"github.com/henderiw/interval/pkg/point/timestamp"
	shopspring "github.com/shopspring/decimal"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry struct {
	Kind   Kind
	Labels labels.Set
}

// Builtins returns the kinds of the domains shipped with this module.
func Builtins() []Entry {
	return []Entry{
		{Kind: KindOf[int64, integer.Int64]("int"), Labels: labels.Set{LabelFamily: "numeric"}},
		{Kind: KindOf[int32, integer.Int32]("int32"), Labels: labels.Set{LabelFamily: "numeric"}},
		{Kind: KindOf[float64, float.Float64]("float"), Labels: labels.Set{LabelFamily: "numeric"}},
		{Kind: KindOf[shopspring.Decimal, decimal.Decimal]("decimal"), Labels: labels.Set{LabelFamily: "numeric"}},
		{Kind: KindOf[time.Time, date.Date]("date"), Labels: labels.Set{LabelFamily: "temporal"}},
		{Kind: KindOf[time.Time, timestamp.Timestamp]("timestamp"), Labels: labels.Set{LabelFamily: "temporal"}},
		{Kind: KindOf[netip.Addr, ipaddr.Addr]("inet"), Labels: labels.Set{LabelFamily: "network"}},
	}
}

// Default returns a registry holding the builtin kinds.
func Default(opts ...Option) (Registry, error) {
	return New(Builtins(), opts...)
}
