package ledger

import (
	"sync"

	domain "github.com/ghuser/assetforge/services/registry/domain"
	"github.com/ghuser/assetforge/services/registry/domain/models"
)

// AccessGate is the single-owner administrative gate for the registry.
type AccessGate struct {
	mu    sync.Mutex
	admin models.Principal
}

// NewAccessGate returns a gate owned by admin.
func NewAccessGate(admin models.Principal) *AccessGate {
	return &AccessGate{admin: admin}
}

// CurrentAdmin returns the principal holding administrative rights.
func (g *AccessGate) CurrentAdmin() models.Principal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.admin
}

// TransferAdminRights hands administrative rights to newAdmin. Restricted to
// the current admin.
func (g *AccessGate) TransferAdminRights(caller, newAdmin models.Principal) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if caller != g.admin {
		return domain.ErrUnauthorizedAdmin
	}
	g.admin = newAdmin
	return nil
}
