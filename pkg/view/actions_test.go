package view

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     int
	Locked bool
}

func rowURL(suffix string) func(row) ActionTarget {
	return func(r row) ActionTarget { return Link("/rows/" + strconv.Itoa(r.ID) + suffix) }
}

func kinds(actions []Action) []ActionKind {
	out := make([]ActionKind, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Kind)
	}
	return out
}

func TestDefaultsForEveryKind(t *testing.T) {
	want := map[ActionKind][2]string{
		ActionEdit:      {"pencil", "Edit"},
		ActionDelete:    {"trash-2", "Delete"},
		ActionDuplicate: {"copy", "Duplicate"},
		ActionView:      {"eye", "View"},
		ActionCustom:    {"more-horizontal", "Action"},
	}
	for kind, w := range want {
		a := Action{Kind: kind}
		assert.Equal(t, w[0], a.ResolvedIcon(), kind)
		assert.Equal(t, w[1], a.ResolvedTooltip(), kind)
		assert.Equal(t, DefaultsFor(kind).Class, a.ResolvedClass(), kind)
		assert.NotEmpty(t, a.ResolvedClass(), kind)
	}
}

func TestUnknownKindFallsBackToCustom(t *testing.T) {
	assert.Equal(t, DefaultsFor(ActionCustom), DefaultsFor(ActionKind("archive")))
}

func TestExplicitFieldsOverrideDefaults(t *testing.T) {
	a := Action{Kind: ActionDelete, Icon: "archive", Class: "text-amber-600", Tooltip: "Archive"}
	assert.Equal(t, "archive", a.ResolvedIcon())
	assert.Equal(t, "text-amber-600", a.ResolvedClass())
	assert.Equal(t, "Archive", a.ResolvedTooltip())
}

func TestAccessibleNamePrefersLabel(t *testing.T) {
	assert.Equal(t, "Open", Action{Kind: ActionView, Label: "Open"}.AccessibleName())
	assert.Equal(t, "View", Action{Kind: ActionView}.AccessibleName())
}

func TestCommonActionsOrderAndTargets(t *testing.T) {
	r := row{ID: 7}
	actions := CommonActions(r, ActionCallbacks[row]{
		View:      rowURL(""),
		Edit:      rowURL("/edit"),
		Duplicate: func(r row) ActionTarget { return Submit(http.MethodPost, "/rows/7/duplicate", "") },
		Delete:    func(r row) ActionTarget { return Submit(http.MethodDelete, "/rows/7", "") },
	})

	require.Equal(t, []ActionKind{ActionView, ActionEdit, ActionDuplicate, ActionDelete}, kinds(actions))
	assert.Equal(t, "/rows/7", actions[0].Target.URL)
	assert.Equal(t, "/rows/7/edit", actions[1].Target.URL)
	assert.True(t, actions[1].Target.IsLink())
	assert.False(t, actions[2].Target.IsLink())
	assert.NotEmpty(t, actions[3].Target.Confirm, "delete forms ask for confirmation")
}

func TestCommonActionsKeepsCallerConfirm(t *testing.T) {
	actions := CommonActions(row{ID: 1}, ActionCallbacks[row]{
		Delete: func(r row) ActionTarget { return Submit(http.MethodDelete, "/rows/1", "Really?") },
	})
	require.Len(t, actions, 1)
	assert.Equal(t, "Really?", actions[0].Target.Confirm)
}

func TestRecordActionsOmitsMissingCallbacks(t *testing.T) {
	actions := RecordActions(row{ID: 3}, ActionCallbacks[row]{
		View:      rowURL(""),
		Duplicate: rowURL("/duplicate"),
	}, nil)

	assert.Equal(t, []ActionKind{ActionView, ActionDuplicate}, kinds(actions))
}

func TestRecordActionsDuplicatePredicate(t *testing.T) {
	cb := ActionCallbacks[row]{
		Edit:      rowURL("/edit"),
		Duplicate: rowURL("/duplicate"),
		Delete:    rowURL("/delete"),
	}
	canDuplicate := func(r row) bool { return !r.Locked }

	assert.Equal(t,
		[]ActionKind{ActionEdit, ActionDuplicate, ActionDelete},
		kinds(RecordActions(row{ID: 1}, cb, canDuplicate)))
	assert.Equal(t,
		[]ActionKind{ActionEdit, ActionDelete},
		kinds(RecordActions(row{ID: 2, Locked: true}, cb, canDuplicate)))
}

func TestRecordActionsEmpty(t *testing.T) {
	assert.Empty(t, RecordActions(row{}, ActionCallbacks[row]{}, func(row) bool { return true }))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "€1299.50", Money(decimal.RequireFromString("1299.5"), "EUR"))
	assert.Equal(t, "$0.00", Money(decimal.Zero, "USD"))
	assert.Equal(t, "-€5.00", Money(decimal.NewFromInt(-5), "EUR"))
	assert.Equal(t, "CHF 10.00", Money(decimal.NewFromInt(10), "CHF"))
}
