package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"    //mysql
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	_ "github.com/jinzhu/gorm/dialects/sqlite"   //sqlite
	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/config"
	"github.com/radhian/credit-timeline/handler"
	"github.com/radhian/credit-timeline/infra/db/dao"
	"github.com/radhian/credit-timeline/infra/db/model"
	"github.com/radhian/credit-timeline/middlewares"
	creditReportUsecase "github.com/radhian/credit-timeline/usecase/creditreport"
)

type App struct {
	DB     *gorm.DB
	Router *mux.Router
	Config *config.Config
}

func (a *App) Initialize(cfg *config.Config) error {
	a.Config = cfg
	cfg.Log.ApplyLogLevel()

	db, err := OpenDB(cfg.Database)
	if err != nil {
		return err
	}
	a.DB = db

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
	return nil
}

// OpenDB connects with the configured driver and migrates the record table
// when auto_migrate is set.
func OpenDB(dbCfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn, err := dbCfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dbCfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to %s database %s: %w", dbCfg.Driver, dbCfg.Name, err)
	}
	log.Infof("[App] Connected to %s database %s", dbCfg.Driver, dbCfg.Name)

	if dbCfg.AutoMigrate {
		if err := db.AutoMigrate(&model.CreditRecord{}).Error; err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to migrate credit records: %w", err)
		}
	}
	return db, nil
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	uc := creditReportUsecase.NewCreditReportUsecase(dao.NewDaoMethod(a.DB), a.Config.Engine.ShardSize)
	RegisterCreditRoutes(a.Router, handler.NewCreditHandler(uc))
}

func (a *App) RunServer() error {
	defer a.DB.Close()

	port := a.Config.Server.Port
	log.Infof("[App] Server starting on port %v", port)
	return http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, a.Router))
}
