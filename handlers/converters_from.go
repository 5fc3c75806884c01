package handlers

import (
	"myregistry/domain"
	"myregistry/service"
)

// fromRegisterRequest converts RegisterRequest to a canonical domain.Registration and its update options.
// Returns service.BadParameterError on validation failure.
func fromRegisterRequest(req RegisterRequest) (domain.Registration, domain.UpdateOptions, error) {
	if req.TtlSeconds != nil {
		if err := domain.ValidateTTL(*req.TtlSeconds); err != nil {
			return domain.Registration{}, domain.UpdateOptions{}, err
		}
	}

	reg, err := domain.NewRegistration(domain.Registration{
		Name:    req.Name,
		Version: req.Version,
		Host:    req.Host,
		Port:    req.Port,
		Meta:    service.Value(req.Meta),
	})
	if err != nil {
		return domain.Registration{}, domain.UpdateOptions{}, err
	}

	return reg, domain.UpdateOptions{TTLSeconds: req.TtlSeconds}, nil
}

// fromListRegistrationsParams converts query params to domain.Query.
func fromListRegistrationsParams(params ListRegistrationsParams) (domain.Query, error) {
	q := domain.Query{
		Name:    service.Value(params.Name),
		Version: service.Value(params.Version),
	}
	if q.Version != "" && q.Name == "" {
		return domain.Query{}, service.NewBadParameterError("version requires name", nil)
	}
	return q, nil
}
