package storagemock

import (
	"context"

	"soluciones-site/api/services/content"
)

type StorageMock struct {
	GetLandingPageMock func(ctx context.Context, locale string) (*content.LandingPage, error)
}

func (m *StorageMock) GetLandingPage(ctx context.Context, locale string) (*content.LandingPage, error) {
	if m != nil && m.GetLandingPageMock != nil {
		return m.GetLandingPageMock(ctx, locale)
	}

	return &content.LandingPage{
		Locale: locale,
		Hero: content.Hero{
			Title:    "Soluciones",
			Subtitle: "Impulsamos tu crecimiento con soluciones en asesoría fiscal, contabilidad, cumplimiento y seguridad social.",
			CTALabel: "Agenda tu consulta",
		},
		Services: []content.Offering{
			{Icon: "calculator", Title: "Contabilidad", Description: "Llevamos el control contable de tu negocio con precisión y transparencia."},
			{Icon: "file-invoice", Title: "Impuestos", Description: "Aseguramos que tu empresa cumpla con todas las disposiciones fiscales a tiempo."},
			{Icon: "users", Title: "Nómina", Description: "Administramos tu nómina de forma integral, garantizando pagos puntuales."},
		},
		Sectors: []content.Sector{
			{Icon: "industry", Name: "Industria"},
			{Icon: "store", Name: "Comercio"},
		},
		Stats: []content.Stat{
			{Value: 200, Suffix: "+", Label: "Clientes atendidos"},
			{Value: 15, Suffix: "+", Label: "Años de experiencia"},
		},
	}, nil
}
