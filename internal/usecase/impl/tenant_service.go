package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/repository"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tenantService implements the TenantUsecase interface.
type tenantService struct {
	txManager  repository.TransactionManager
	tenantRepo repository.TenantRepository
	logger     *slog.Logger
}

// TenantServiceParams holds dependencies for tenantService, injected by Fx.
type TenantServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TenantRepo repository.TenantRepository
	Logger     *slog.Logger
}

// NewTenantService is the constructor for tenantService.
func NewTenantService(params TenantServiceParams) usecase.TenantUsecase {
	return &tenantService{
		txManager:  params.TxManager,
		tenantRepo: params.TenantRepo,
		logger:     params.Logger,
	}
}

func (srv *tenantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTenant provisions a new active tenant with a unique subdomain.
func (srv *tenantService) CreateTenant(ctx context.Context, input *usecase.CreateTenantInput) (*usecase.TenantOutput, error) {
	srv.log(ctx).Info("Creating tenant", slog.String("subdomain", input.Subdomain))

	newTenant := &entity.Tenant{
		Name:      input.Name,
		Subdomain: input.Subdomain,
		Status:    entity.TenantStatusActive,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TenantRepo().Create(ctx, newTenant); err != nil {
			if errors.Is(err, repository.ErrDuplicateTenant) {
				return errors.Wrap(domainerrors.ErrDuplicateTenant, "subdomain already taken")
			}

			return errors.Wrap(err, "failed to create tenant")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create tenant", slog.String("subdomain", input.Subdomain), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute tenant creation transaction")
	}

	srv.log(ctx).Debug("Tenant created", slog.Any("tenantID", newTenant.ID))

	return toTenantOutput(newTenant), nil
}

// GetTenant loads a tenant by ID.
func (srv *tenantService) GetTenant(ctx context.Context, id uuid.UUID) (*usecase.TenantOutput, error) {
	tenant, err := srv.tenantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTenantNotFound, "tenant not found")
		}

		return nil, errors.Wrap(err, "failed to find tenant by id")
	}

	return toTenantOutput(tenant), nil
}

// UpdateTenant applies the non-nil input fields to an existing tenant.
func (srv *tenantService) UpdateTenant(ctx context.Context, input *usecase.UpdateTenantInput) (*usecase.TenantOutput, error) {
	srv.log(ctx).Info("Updating tenant", slog.Any("tenantID", input.ID))

	var updatedTenant *entity.Tenant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.TenantRepo()

		tenant, findErr := tenantRepo.FindByID(ctx, input.ID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrTenantNotFound) {
				return errors.Wrap(domainerrors.ErrTenantNotFound, "tenant not found")
			}

			return errors.Wrap(findErr, "failed to find tenant for update")
		}

		if input.Name != nil {
			tenant.Name = *input.Name
		}
		if input.Status != nil {
			tenant.Status = entity.TenantStatus(*input.Status)
		}

		if updateErr := tenantRepo.Update(ctx, tenant); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update tenant")
		}

		updatedTenant = tenant

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Tenant update failed", slog.Any("tenantID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute tenant update transaction")
	}

	srv.log(ctx).Debug("Tenant updated", slog.Any("tenantID", updatedTenant.ID))

	return toTenantOutput(updatedTenant), nil
}

// ResolveActiveTenant loads a tenant by ID and ensures it is active.
func (srv *tenantService) ResolveActiveTenant(ctx context.Context, id uuid.UUID) (*usecase.TenantOutput, error) {
	tenant, err := srv.tenantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTenantNotFound, "tenant not found")
		}

		return nil, errors.Wrap(err, "failed to find tenant by id")
	}

	if !tenant.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrTenantNotFound, "tenant is inactive")
	}

	return toTenantOutput(tenant), nil
}

// ResolveActiveTenantBySubdomain loads a tenant by subdomain and ensures it
// is active. An inactive tenant resolves the same as a missing one.
func (srv *tenantService) ResolveActiveTenantBySubdomain(ctx context.Context, subdomain string) (*usecase.TenantOutput, error) {
	tenant, err := srv.tenantRepo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTenantNotFound, "tenant not found")
		}

		return nil, errors.Wrap(err, "failed to find tenant by subdomain")
	}

	if !tenant.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrTenantNotFound, "tenant is inactive")
	}

	return toTenantOutput(tenant), nil
}

func toTenantOutput(tenant *entity.Tenant) *usecase.TenantOutput {
	return &usecase.TenantOutput{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Subdomain: tenant.Subdomain,
		Status:    tenant.Status.String(),
		CreatedAt: tenant.CreatedAt,
	}
}
