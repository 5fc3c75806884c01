package handlers

import (
	"myregistry/domain"
)

// toRegistration converts a domain registration to its API form.
func toRegistration(r domain.Registration) Registration {
	out := Registration{
		Id:      r.ID,
		Name:    r.Name,
		Version: r.Version,
		Host:    r.Host,
		Port:    r.Port,
	}
	if len(r.Meta) > 0 {
		meta := r.Meta
		out.Meta = &meta
	}
	return out
}

// toRegistrationsResponse converts domain registrations to API response.
func toRegistrationsResponse(regs []domain.Registration) RegistrationsResponse {
	out := make([]Registration, 0, len(regs))
	for _, r := range regs {
		out = append(out, toRegistration(r))
	}
	return RegistrationsResponse{Registrations: out}
}
