package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shelter-adoption/internal/config"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Restricciones que AutoMigrate no sabe expresar.
var constraintStatements = []string{
	// una sola solicitud activa por mascota
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_solicitud_activa_por_mascota
        ON solicitudes_adopcion (pet_id)
        WHERE estado IN ('pendiente', 'aprobada')`,

	// una sola cita de convivencia viva por solicitud
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_cita_activa_por_solicitud
        ON citas_adopcion (request_id)
        WHERE estado IN ('pendiente', 'aprobada')`,

	// los admins creados por CLI pueden no tener CURP
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_perfil_curp
        ON perfiles (curp)
        WHERE curp <> ''`,
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Pet{},
		&models.Document{},
		&models.AdoptionRequest{},
		&models.VisitAppointment{},
		&models.VetAppointment{},
		&models.Adoption{},
		&models.FollowUp{},
		&models.Donation{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	db.Exec(`
        UPDATE mascotas
        SET disponible_adopcion = false
        WHERE estado <> 'disponible' AND disponible_adopcion = true
    `)

	return nil
}
