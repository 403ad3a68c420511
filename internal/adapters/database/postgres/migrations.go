package postgres

import "github.com/campushub/api/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Event{},
	&entity.Resource{},
	&entity.Booking{},
	&entity.Club{},
	&entity.Notification{},
	&entity.Message{},
}
