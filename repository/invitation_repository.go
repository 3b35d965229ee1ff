// repository/invitation_repository.go
package repository

import "github.com/triplink-app/triplink-backend/models"

// InvitationRepository handles store operations for pending invitations
type InvitationRepository struct {
	store *Store
}

// NewInvitationRepository creates a new InvitationRepository
func NewInvitationRepository(store *Store) *InvitationRepository {
	return &InvitationRepository{store: store}
}

// ListInvitations returns all pending invitations
func (r *InvitationRepository) ListInvitations() []models.Invitation {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]models.Invitation(nil), r.store.invitations...)
}

// GetInvitation retrieves a pending invitation by id
func (r *InvitationRepository) GetInvitation(id string) (models.Invitation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, inv := range r.store.invitations {
		if inv.ID == id {
			return inv, nil
		}
	}
	return models.Invitation{}, ErrNotFound
}

// AddInvitation appends a pending invitation
func (r *InvitationRepository) AddInvitation(inv models.Invitation) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.invitations = append(r.store.invitations, inv)
}

// RemoveInvitation removes a pending invitation; accepting and declining
// both end here
func (r *InvitationRepository) RemoveInvitation(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, inv := range r.store.invitations {
		if inv.ID == id {
			r.store.invitations = append(r.store.invitations[:i], r.store.invitations[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
