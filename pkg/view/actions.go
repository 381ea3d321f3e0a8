package view

import "net/http"

// ActionKind selects the icon, colour and tooltip a row action gets when the
// descriptor leaves them empty.
type ActionKind string

const (
	ActionEdit      ActionKind = "edit"
	ActionDelete    ActionKind = "delete"
	ActionDuplicate ActionKind = "duplicate"
	ActionView      ActionKind = "view"
	ActionCustom    ActionKind = "custom"
)

type ActionLayout string

const (
	LayoutInline   ActionLayout = "inline"
	LayoutDropdown ActionLayout = "dropdown"
)

type ActionSize string

const (
	SizeSmall  ActionSize = "sm"
	SizeMedium ActionSize = "md"
	SizeLarge  ActionSize = "lg"
)

// ActionTarget is what happens when the control is activated.
// GET targets render as links, anything else as a one-button form.
type ActionTarget struct {
	Method  string
	URL     string
	Confirm string // optional prompt shown before submitting
}

// Link is a GET target.
func Link(url string) ActionTarget {
	return ActionTarget{Method: http.MethodGet, URL: url}
}

// Submit is a form target; non-POST verbs are sent with a _method override.
func Submit(method, url, confirm string) ActionTarget {
	return ActionTarget{Method: method, URL: url, Confirm: confirm}
}

// IsLink reports whether the target is navigated to rather than submitted.
func (t ActionTarget) IsLink() bool {
	return t.Method == "" || t.Method == http.MethodGet
}

// Action describes one row control. Empty Icon, Class and Tooltip fall back to
// the defaults of Kind.
type Action struct {
	Kind     ActionKind
	Target   ActionTarget
	Disabled bool
	Tooltip  string
	Icon     string
	Label    string
	Class    string
}

type ActionDefaults struct {
	Icon    string
	Class   string
	Tooltip string
}

var actionDefaults = map[ActionKind]ActionDefaults{
	ActionEdit: {
		Icon:    "pencil",
		Class:   "text-blue-600 hover:text-blue-800 hover:bg-blue-50",
		Tooltip: "Edit",
	},
	ActionDelete: {
		Icon:    "trash-2",
		Class:   "text-red-600 hover:text-red-800 hover:bg-red-50",
		Tooltip: "Delete",
	},
	ActionDuplicate: {
		Icon:    "copy",
		Class:   "text-green-600 hover:text-green-800 hover:bg-green-50",
		Tooltip: "Duplicate",
	},
	ActionView: {
		Icon:    "eye",
		Class:   "text-gray-600 hover:text-gray-800 hover:bg-gray-100",
		Tooltip: "View",
	},
	ActionCustom: {
		Icon:    "more-horizontal",
		Class:   "text-gray-600 hover:text-gray-800 hover:bg-gray-100",
		Tooltip: "Action",
	},
}

// DefaultsFor returns the fixed defaults of a kind. Unknown kinds get the
// custom defaults.
func DefaultsFor(kind ActionKind) ActionDefaults {
	if d, ok := actionDefaults[kind]; ok {
		return d
	}
	return actionDefaults[ActionCustom]
}

func (a Action) ResolvedIcon() string {
	if a.Icon != "" {
		return a.Icon
	}
	return DefaultsFor(a.Kind).Icon
}

func (a Action) ResolvedClass() string {
	if a.Class != "" {
		return a.Class
	}
	return DefaultsFor(a.Kind).Class
}

func (a Action) ResolvedTooltip() string {
	if a.Tooltip != "" {
		return a.Tooltip
	}
	return DefaultsFor(a.Kind).Tooltip
}

// AccessibleName is what screen readers announce: the label, else the tooltip.
func (a Action) AccessibleName() string {
	if a.Label != "" {
		return a.Label
	}
	return a.ResolvedTooltip()
}

// ActionCallbacks map a record to the target of each common action.
// A nil callback means the action is not offered.
type ActionCallbacks[T any] struct {
	View      func(T) ActionTarget
	Edit      func(T) ActionTarget
	Duplicate func(T) ActionTarget
	Delete    func(T) ActionTarget
}

// CommonActions builds the view, edit, duplicate and delete descriptors for
// target, one per supplied callback, in that order.
func CommonActions[T any](target T, cb ActionCallbacks[T]) []Action {
	out := make([]Action, 0, 4)
	if cb.View != nil {
		out = append(out, Action{Kind: ActionView, Target: cb.View(target)})
	}
	if cb.Edit != nil {
		out = append(out, Action{Kind: ActionEdit, Target: cb.Edit(target)})
	}
	if cb.Duplicate != nil {
		out = append(out, Action{Kind: ActionDuplicate, Target: cb.Duplicate(target)})
	}
	if cb.Delete != nil {
		t := cb.Delete(target)
		if t.Confirm == "" && !t.IsLink() {
			t.Confirm = "Delete this item? This cannot be undone."
		}
		out = append(out, Action{Kind: ActionDelete, Target: t})
	}
	return out
}

// RecordActions is CommonActions for a table row: duplicate is kept only when
// canDuplicate allows it (a nil predicate allows it).
func RecordActions[T any](record T, cb ActionCallbacks[T], canDuplicate func(T) bool) []Action {
	if cb.Duplicate != nil && canDuplicate != nil && !canDuplicate(record) {
		cb.Duplicate = nil
	}
	return CommonActions(record, cb)
}
