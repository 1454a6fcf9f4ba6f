package http

import (
	"time"

	"github.com/aussiebroadwan/pandda/internal/panel/domain"
	"github.com/aussiebroadwan/pandda/internal/panel/service"
	"github.com/aussiebroadwan/pandda/pkg/datex"
	"github.com/aussiebroadwan/pandda/pkg/panelsdk"
)

func toUserDTO(u domain.User) panelsdk.CurrentUser {
	return panelsdk.CurrentUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role.String(),
		Name:  u.Name,
	}
}

func toClientDTO(c domain.Client) panelsdk.ClientRecord {
	out := panelsdk.ClientRecord{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Notified:     c.Notified,
		PlanID:       c.PlanID,
		Screens:      c.Screens,
		Price:        c.Price,
		AccessPoints: make([]panelsdk.AccessPoint, 0, len(c.AccessPoints)),
	}
	if !c.DueDate.IsZero() {
		out.DueDate = datex.Format(c.DueDate)
	}
	for _, ap := range c.AccessPoints {
		out.AccessPoints = append(out.AccessPoints, panelsdk.AccessPoint{
			ID:          ap.ID,
			AppID:       ap.AppID,
			AppName:     ap.AppName,
			Username:    ap.Username,
			Password:    ap.Password,
			Connections: ap.Connections,
		})
	}
	return out
}

func toPlanDTO(p domain.Plan) panelsdk.Plan {
	return panelsdk.Plan{
		ID:             p.ID,
		Name:           p.Name,
		Screens:        p.Screens,
		ValidityMonths: p.ValidityMonths,
		Price:          p.Price,
		Notes:          p.Notes,
	}
}

func toServerDTO(s domain.Server) panelsdk.Server {
	return panelsdk.Server{ID: s.ID, Name: s.Name, Alias: s.Alias}
}

func toAppDTO(a domain.App) panelsdk.App {
	return panelsdk.App{
		ID:             a.ID,
		Name:           a.Name,
		AccessCode:     a.AccessCode,
		AndroidURL:     a.AndroidURL,
		IOSURL:         a.IOSURL,
		DownloaderCode: a.DownloaderCode,
		NTDownCode:     a.NTDownCode,
		MultipleAccess: a.MultipleAccess,
		ServerID:       a.ServerID,
	}
}

// toRecordDTO converts whatever a dialog save returned.
func toRecordDTO(v any) any {
	switch rec := v.(type) {
	case domain.Client:
		return toClientDTO(rec)
	case domain.Plan:
		return toPlanDTO(rec)
	case domain.Server:
		return toServerDTO(rec)
	case domain.App:
		return toAppDTO(rec)
	default:
		return rec
	}
}

// toClientInput parses the request's due date in loc. An empty date is
// passed on as zero so the service reports it as missing.
func toClientInput(req panelsdk.ClientRequest, loc *time.Location) (service.ClientInput, error) {
	in := service.ClientInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Notified: req.Notified,
		PlanID:   req.PlanID,
		Screens:  req.Screens,
		Price:    req.Price,
	}
	if req.DueDate != "" {
		due, err := datex.Parse(req.DueDate, loc)
		if err != nil {
			return service.ClientInput{}, err
		}
		in.DueDate = due
	}
	if req.AccessPoints != nil {
		in.AccessPoints = make([]service.AccessPointInput, 0, len(req.AccessPoints))
		for _, ap := range req.AccessPoints {
			in.AccessPoints = append(in.AccessPoints, service.AccessPointInput{
				ID:          ap.ID,
				AppID:       ap.AppID,
				Username:    ap.Username,
				Password:    ap.Password,
				Connections: ap.Connections,
			})
		}
	}
	return in, nil
}

func toPlanInput(req panelsdk.PlanRequest) service.PlanInput {
	return service.PlanInput{
		Name:           req.Name,
		Screens:        req.Screens,
		ValidityMonths: req.ValidityMonths,
		Price:          req.Price,
		Notes:          req.Notes,
	}
}

func toServerInput(req panelsdk.ServerRequest) service.ServerInput {
	return service.ServerInput{Name: req.Name, Alias: req.Alias}
}

func toAppInput(req panelsdk.AppRequest) service.AppInput {
	return service.AppInput{
		Name:           req.Name,
		AccessCode:     req.AccessCode,
		AndroidURL:     req.AndroidURL,
		IOSURL:         req.IOSURL,
		DownloaderCode: req.DownloaderCode,
		NTDownCode:     req.NTDownCode,
		MultipleAccess: req.MultipleAccess,
		ServerID:       req.ServerID,
	}
}
