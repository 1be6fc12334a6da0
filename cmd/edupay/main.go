package main

import (
	"context"
	"fmt"

	"github.com/edumart/edupay/internal/adapter/auth"
	"github.com/edumart/edupay/internal/adapter/config"
	"github.com/edumart/edupay/internal/adapter/gateway"
	"github.com/edumart/edupay/internal/adapter/handler/http"
	"github.com/edumart/edupay/internal/adapter/logger"
	"github.com/edumart/edupay/internal/adapter/notify"
	"github.com/edumart/edupay/internal/adapter/storage"
	"github.com/edumart/edupay/internal/adapter/storage/repository"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/edumart/edupay/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gateways := []port.PaymentGateway{
		gateway.NewFastPay(conf.Providers.FastPay),
		gateway.NewOvoPay(conf.Providers.OvoPay),
		gateway.NewZentra(conf.Providers.Zentra),
	}

	notifier, err := notify.NewClient(conf.Notify, log.Named("Notify"))
	if err != nil {
		log.Error("notify client creating error", zap.Error(err))
		return
	}
	notifier.Run(ctx)

	svc, err := service.NewService(repo, tokenService, gateways, notifier, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	walletHandler, err := http.NewWalletHandler(svc, log.Named("Wallet handler"))
	if err != nil {
		log.Error("wallet handler creating error", zap.Error(err))
		return
	}
	callbackHandler, err := http.NewCallbackHandler(svc, gateways, log.Named("Callback handler"))
	if err != nil {
		log.Error("callback handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		userHandler, orderHandler, walletHandler, callbackHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
