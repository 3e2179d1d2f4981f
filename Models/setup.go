package Models

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database and runs migrations. When DB_DSN is set the
// service talks to MySQL, otherwise it falls back to a local sqlite file.
func Connect() {
	var err error
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		DB, err = gorm.Open(sqlite.Open("database.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
}

// Migrate runs AutoMigrate in dependency order.
func Migrate(db *gorm.DB) error {
	// 1. Base tables with no foreign keys
	if err := db.AutoMigrate(
		&User{},
		&Empresa{},
		&Proyecto{},
	); err != nil {
		return err
	}

	// 2. Equipment depends on empresas
	if err := db.AutoMigrate(&Equipo{}); err != nil {
		return err
	}

	// 3. Everything hanging off an equipment record
	if err := db.AutoMigrate(
		&ControlHoras{},
		&Mantenimiento{},
		&Soat{},
		&RevisionTecnica{},
		&Alerta{},
	); err != nil {
		return err
	}

	// 4. Billing, depends on proyectos and equipos
	return db.AutoMigrate(
		&Valorizacion{},
		&ValorizacionEquipo{},
		&PagoValorizacion{},
	)
}
