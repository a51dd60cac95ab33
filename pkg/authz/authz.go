// Package authz decides which roles may act on which resources. Decisions
// come from an embedded casbin RBAC model and policy; admin inherits every
// other role.
package authz

import (
	"catconnect/pkg/domain"
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Object is a protected resource group.
type Object string

const (
	ObjectProfile      Object = "profile"
	ObjectVerification Object = "verification"
	ObjectNotification Object = "notification"
	ObjectAssistant    Object = "assistant"
	ObjectReview       Object = "review"
	ObjectApplication  Object = "application"
	ObjectBusiness     Object = "business"
	ObjectJob          Object = "job"
	ObjectService      Object = "service"
	ObjectModeration   Object = "moderation"
	ObjectUser         Object = "user"
)

// Action is what a role does with an object.
type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Enforcer is safe for concurrent use.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// New loads the embedded model and policy.
func New() (*Enforcer, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("could not load casbin model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(embeddedPolicy))
	if err != nil {
		return nil, fmt.Errorf("could not create casbin enforcer: %w", err)
	}

	return &Enforcer{enforcer: e}, nil
}

// Allowed reports whether role may perform action on object.
func (e *Enforcer) Allowed(role domain.Role, object Object, action Action) (bool, error) {
	ok, err := e.enforcer.Enforce(string(role), string(object), string(action))
	if err != nil {
		return false, fmt.Errorf("could not enforce policy: %w", err)
	}

	return ok, nil
}
