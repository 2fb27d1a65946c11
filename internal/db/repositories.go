package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	Events         *EventRepository
	PeriodDays     *PeriodDayRepository
	CycleSettings  *CycleSettingsRepository
	Checkins       *CheckinRepository
	Pins           *PinRepository
	Ideas          *IdeaRepository
	PartnerInvites *PartnerInviteRepository
	Preferences    *PreferenceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		Events:         NewEventRepository(database),
		PeriodDays:     NewPeriodDayRepository(database),
		CycleSettings:  NewCycleSettingsRepository(database),
		Checkins:       NewCheckinRepository(database),
		Pins:           NewPinRepository(database),
		Ideas:          NewIdeaRepository(database),
		PartnerInvites: NewPartnerInviteRepository(database),
		Preferences:    NewPreferenceRepository(database),
	}
}
