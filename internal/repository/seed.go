package repository

import (
	"time"

	"github.com/moradahub/backend-resident/internal/domain"
)

// Static catalog and demo data for the in-memory session. There is no
// persistence layer; every process starts from this state.

// SeedEnvironments returns the reservable amenity catalog.
func SeedEnvironments() []*domain.Environment {
	return []*domain.Environment{
		{
			ID:          "env-001",
			Name:        "Salão de Festas",
			Capacity:    50,
			Description: "Espaço amplo para eventos e confraternizações.",
			Available:   true,
			Rules: []string{
				"Limpeza obrigatória após o uso.",
				"Som permitido em volume ambiente até as 22h.",
				"Proibido uso de confetes ou serpentinas.",
			},
			Items: []string{"Mesas e Cadeiras", "Freezer", "Microondas"},
		},
		{
			ID:          "env-002",
			Name:        "Churrasqueira",
			Capacity:    20,
			Description: "Área gourmet com churrasqueira e forno de pizza.",
			Available:   true,
			Rules: []string{
				"Morador deve levar próprio carvão e utensílios.",
				"Não deixar restos de comida na grelha.",
			},
			Items: []string{"Grelha", "Forno de Pizza", "Bancada com Pia"},
		},
		{
			ID:          "env-003",
			Name:        "Quadra de Tênis",
			Capacity:    4,
			Description: "Quadra oficial para a prática de tênis.",
			Available:   false,
			Rules: []string{
				"Uso de calçado apropriado é obrigatório.",
				"Máximo de 1h por reserva em dias de alta demanda.",
			},
			Items: []string{"Rede Oficial"},
		},
	}
}

// SeedResidents returns the demo accounts. Both accounts share the demo
// password hash computed at startup.
func SeedResidents(passwordHash string, now time.Time) []*domain.Resident {
	return []*domain.Resident{
		{
			ID:           "res-001",
			Name:         "Ana Clara",
			Email:        "ana.clara@email.com",
			PasswordHash: passwordHash,
			Phone:        "(11) 98765-4321",
			Apartment:    "Apto 72",
			Block:        "Bloco B",
			Role:         domain.RoleResident,
			Vehicles: []domain.Vehicle{
				{ID: "veh-001", Model: "Honda Civic", Plate: "BRA2E19", Type: "Carro"},
				{ID: "veh-002", Model: "Honda PCX", Plate: "RIO2A18", Type: "Moto"},
			},
			Documents: []domain.Document{
				{ID: "doc-001", Name: "Regimento Interno.pdf", Category: "Regras"},
				{ID: "doc-002", Name: "Ata da Última Assembleia.pdf", Category: "Assembleias"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:           "res-900",
			Name:         "Carlos Síndico",
			Email:        "sindico@email.com",
			PasswordHash: passwordHash,
			Phone:        "(11) 91234-5678",
			Apartment:    "Apto 11",
			Block:        "Bloco A",
			Role:         domain.RoleManager,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// SeedAnnouncements returns the initial notification feed, relative to now.
func SeedAnnouncements(now time.Time) []*domain.Announcement {
	return []*domain.Announcement{
		{
			ID:          "ann-001",
			Title:       "Assembleia Geral Convocada",
			Message:     "Pauta: aprovação do orçamento anual...",
			FullMessage: "Convocamos todos os moradores para a assembleia geral obrigatória que acontecerá no Salão de Festas.",
			Type:        domain.AnnouncementTypeUrgent,
			Priority:    domain.PriorityHigh,
			Location:    "Salão de Festas",
			StartTime:   "19:30",
			PublishedAt: now,
		},
		{
			ID:          "ann-002",
			Title:       "Encomenda na Portaria",
			Message:     "Um pacote da Amazon chegou para você.",
			FullMessage: "Olá! Um pacote da loja Amazon foi recebido na portaria e está aguardando sua retirada.",
			Type:        domain.AnnouncementTypeDelivery,
			Priority:    domain.PriorityMedium,
			PublishedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:          "ann-003",
			Title:       "Manutenção - Elevador Bloco A",
			Message:     "O elevador passará por manutenção preventiva...",
			FullMessage: "Para garantir a segurança de todos, o elevador do Bloco A passará por uma manutenção preventiva agendada.",
			Type:        domain.AnnouncementTypeWarning,
			Priority:    domain.PriorityMedium,
			Location:    "Elevador - Bloco A",
			StartTime:   "08:00",
			EndTime:     "17:00",
			PublishedAt: now.AddDate(0, 0, -3),
		},
		{
			ID:          "ann-004",
			Title:       "Nova Regra para Pets",
			Message:     "A partir de 01/09, será obrigatório o uso de coleira...",
			FullMessage: "A partir de 01/09/2025, será obrigatório o uso de coleira para todos os pets nas áreas comuns do condomínio.",
			Type:        domain.AnnouncementTypeInfo,
			Priority:    domain.PriorityMedium,
			Location:    "Áreas Comuns",
			Read:        true,
			PublishedAt: now.AddDate(0, 0, -15),
		},
		{
			ID:          "ann-005",
			Title:       "Dedetização Concluída",
			Message:     "As áreas comuns foram dedetizadas com sucesso.",
			FullMessage: "Informamos que a dedetização programada para as áreas comuns foi concluída com sucesso.",
			Type:        domain.AnnouncementTypeSuccess,
			Priority:    domain.PriorityLow,
			Read:        true,
			PublishedAt: now.AddDate(0, 0, -16),
		},
	}
}

// SeedParcels returns the initial front-desk packages for the demo resident.
func SeedParcels(now time.Time) []*domain.Parcel {
	pickedUpToday := now.Add(-2 * time.Hour)
	pickedUpYesterday := now.AddDate(0, 0, -1)
	return []*domain.Parcel{
		{
			ID:           "pkg-001",
			ResidentID:   "res-001",
			Store:        "AliExpress",
			TrackingCode: "ALI998877665BR",
			Status:       domain.ParcelStatusAwaitingPickup,
			ArrivedAt:    now.AddDate(0, 0, -4),
		},
		{
			ID:           "pkg-002",
			ResidentID:   "res-001",
			Store:        "Mercado Livre",
			TrackingCode: "ML555444333BR",
			Status:       domain.ParcelStatusAwaitingPickup,
			ArrivedAt:    now.AddDate(0, 0, -3),
		},
		{
			ID:           "pkg-003",
			ResidentID:   "res-001",
			Store:        "Shopee",
			TrackingCode: "SHP123456789BR",
			Status:       domain.ParcelStatusPickedUp,
			ArrivedAt:    now.AddDate(0, 0, -1),
			PickedUpAt:   &pickedUpYesterday,
		},
		{
			ID:           "pkg-004",
			ResidentID:   "res-001",
			Store:        "Amazon",
			TrackingCode: "AMZ987654321BR",
			Status:       domain.ParcelStatusPickedUp,
			ArrivedAt:    now.Add(-3 * time.Hour),
			PickedUpAt:   &pickedUpToday,
		},
	}
}
