package pets

import (
	"context"
	"strings"
)

// IsOwnedBy indica si la mascota pertenece a userID.
// Devuelve ErrNotFound si petID no existe, así el handler responde 404 antes que 403.
func (s *Service) IsOwnedBy(ctx context.Context, petID, userID string) (bool, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return false, err
	}
	return p.OwnerUserID == strings.TrimSpace(userID), nil
}
