package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tangzhangming/cubit/internal/config"
	"github.com/tangzhangming/cubit/internal/history"
	"github.com/tangzhangming/cubit/internal/i18n"
	"github.com/tangzhangming/cubit/internal/server"
)

// serveCmd 启动 HTTP 执行服务
func serveCmd(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.Server.Addr, i18n.T(i18n.MsgServeOptAddr))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgServeUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgServeDescription))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if err := serve(cfg, *addr); err != nil {
		printError(i18n.T(i18n.ErrRunError, err))
		os.Exit(1)
	}
}

// serve 运行服务直到收到中断信号，返回前关闭历史记录库
func serve(cfg *config.Config, addr string) error {
	opts := []server.Option{
		server.WithTimeout(cfg.Server.Timeout.Duration),
		server.WithVersion(version),
	}

	if cfg.Server.History != "" {
		store, err := history.Open(cfg.Server.History)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Count(context.Background())
		if err != nil {
			return err
		}
		log.Infof("history %s: %d runs recorded", store.Path(), n)
		opts = append(opts, server.WithHistory(store))
	}

	srv := server.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("shutdown: %s", err)
		}
		return <-errc
	}
}
