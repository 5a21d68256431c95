package cmd

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	currency "github.com/malusev998/nbp-rates"
	"github.com/malusev998/nbp-rates/storage"
)

func getMysqlDSN(config map[string]string) string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = config["user"]
	mysqlDriverConfig.Passwd = config["password"]
	mysqlDriverConfig.Addr = config["addr"]
	mysqlDriverConfig.Net = "tcp"
	mysqlDriverConfig.DBName = config["db"]
	mysqlDriverConfig.ParseTime = true

	return mysqlDriverConfig.FormatDSN()
}

func storageConfigs(ctx context.Context, v *viper.Viper) map[storage.Provider]interface{} {
	mysqlConfig := v.GetStringMapString("databases.mysql")
	mongodbConfig := v.GetStringMapString("databases.mongodb")

	storageBaseConfig := storage.BaseConfig{
		Cxt:     ctx,
		Migrate: v.GetBool("migrate"),
	}

	table := mysqlConfig["table"]
	if table == "" {
		table = "rates"
	}

	collection := mongodbConfig["collection"]
	if collection == "" {
		collection = "rates"
	}

	return map[storage.Provider]interface{}{
		storage.MySQL: storage.MySQLConfig{
			BaseConfig:       storageBaseConfig,
			ConnectionString: getMysqlDSN(mysqlConfig),
			TableName:        table,
		},
		storage.MongoDB: storage.MongoDBConfig{
			BaseConfig:       storageBaseConfig,
			ConnectionString: mongodbConfig["uri"],
			Database:         mongodbConfig["db"],
			Collection:       collection,
		},
	}
}

func createStorages(ctx context.Context, v *viper.Viper) ([]currency.Storage, error) {
	providers, err := storage.ConvertToProvidersFromStringSlice(v.GetStringSlice("storage"))
	if err != nil {
		return nil, err
	}

	configs := storageConfigs(ctx, v)
	storages := make([]currency.Storage, 0, len(providers))

	for _, p := range providers {
		st, err := storage.NewStorage(p, configs[p])

		if err != nil {
			for _, opened := range storages {
				_ = opened.Close()
			}

			return nil, fmt.Errorf("storage %s: %w", p, err)
		}

		storages = append(storages, st)
	}

	return storages, nil
}
