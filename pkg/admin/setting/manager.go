package setting

import (
	"context"
	"fmt"

	"worksuite-be/internal/dto"
	"worksuite-be/internal/entity"
	"worksuite-be/internal/repository/contract"
)

// Gateway credential groups follow the "payment.<method>" convention; the
// enabled flag and mode live beside the credentials in the same group.
const (
	PaymentGroupPrefix = "payment."
	KeyEnabled         = "enabled"
	KeyMode            = "mode"
)

// Manager handles the grouped admin settings store. It talks to the settings
// repository directly (usually the cached one) rather than the unit of work:
// settings writes are single-row upserts with no cross-table invariants.
type Manager struct {
	settings contract.SettingRepository
}

// NewManager creates a new settings manager
func NewManager(settings contract.SettingRepository) *Manager {
	return &Manager{settings: settings}
}

// UpdateGroup upserts every key in the request under its group.
func (m *Manager) UpdateGroup(ctx context.Context, req dto.UpdateSettingsRequest) error {
	for key, value := range req.Settings {
		s := &entity.Setting{
			Group: req.Group,
			Key:   key,
			Value: value,
		}
		if err := m.settings.Upsert(ctx, s); err != nil {
			return fmt.Errorf("upsert setting %s/%s: %w", req.Group, key, err)
		}
	}
	return nil
}

// GetGroup returns one settings group as a flat map.
func (m *Manager) GetGroup(ctx context.Context, group string) (map[string]string, error) {
	settings, err := m.settings.FindGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	res := make(map[string]string, len(settings))
	for _, s := range settings {
		res[s.Key] = s.Value
	}
	return res, nil
}

// UpdatePaymentMethod stores a gateway's enabled flag, mode and credentials.
func (m *Manager) UpdatePaymentMethod(ctx context.Context, req dto.PaymentMethodSettingsRequest) error {
	group := PaymentGroupPrefix + req.Method

	values := map[string]string{
		KeyEnabled: fmt.Sprintf("%t", req.Enabled),
	}
	if req.Mode != "" {
		values[KeyMode] = req.Mode
	}
	for key, value := range req.Credentials {
		values[key] = value
	}

	return m.UpdateGroup(ctx, dto.UpdateSettingsRequest{Group: group, Settings: values})
}

// PaymentMethodEnabled reads the enabled flag for one gateway group.
func (m *Manager) PaymentMethodEnabled(ctx context.Context, method string) (bool, error) {
	value, err := m.settings.FindValue(ctx, PaymentGroupPrefix+method, KeyEnabled)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}
