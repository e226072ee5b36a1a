package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"svm"
	"svm/config"
	"svm/diagram"
	"svm/load"
	"svm/logger"
	"svm/server"
	"svm/types"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.PrettyLog})
	logger.SetGlobalLogger(log)

	var (
		alpha   = flag.String("alpha", "0", "uα (V)")
		beta    = flag.String("beta", "0", "uβ (V)")
		udc     = flag.Float64("udc", cfg.Udc, "直流母线电压 (V)")
		box     = flag.Float64("box", cfg.BoxSizeVolts, "栅格宽度 (V/格)")
		phases  = flag.Bool("phases", cfg.ShowPhases, "显示 U/V/W 相轴")
		showSVM = flag.Bool("svm", cfg.ShowSVM, "显示 SVM 六边形与分解")
		overmod = flag.String("overmod", cfg.OverModulation.String(), "过调制策略 passthrough|renormalize")
		file    = flag.String("file", "", "批量矢量文件, 每行 alpha beta [udc]")
		out     = flag.String("out", "", "矢量图输出文件 (.svg/.png/.pdf)")
		serve   = flag.Bool("serve", false, "启动 HTTP 服务")
	)
	flag.Parse()

	if *serve {
		if err := run(cfg, log); err != nil {
			log.Fatal().Err(err).Msg("服务异常退出")
		}
		return
	}

	base := cfg.Params()
	base.Udc, base.BoxSizeVolts = *udc, *box
	base.ShowPhases, base.ShowSVM = *phases, *showSVM
	if base.OverModulation, err = types.ParseOverModulationMode(*overmod); err != nil {
		log.Fatal().Err(err).Msg("参数错误")
	}
	if !(base.Udc > 0) || !(base.BoxSizeVolts > 0) {
		log.Fatal().Float64("udc", base.Udc).Float64("box", base.BoxSizeVolts).Msg("udc 与 box 必须为正")
	}

	var list []types.RenderParameters
	if *file != "" {
		if list, err = load.LoadFile(*file, base); err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("矢量文件加载失败")
		}
	} else {
		p := base
		if p.Vector.Alpha, err = load.ParseComponent(*alpha); err != nil {
			log.Fatal().Err(err).Msg("uα 参数错误")
		}
		if p.Vector.Beta, err = load.ParseComponent(*beta); err != nil {
			log.Fatal().Err(err).Msg("uβ 参数错误")
		}
		list = append(list, p)
	}

	results := svm.Batch(log, list)
	if err := load.Export(os.Stdout, results); err != nil {
		log.Fatal().Err(err).Msg("结果输出失败")
	}
	if *out != "" && len(results) > 0 {
		if err := writeDiagram(*out, results[len(results)-1]); err != nil {
			log.Fatal().Err(err).Str("out", *out).Msg("矢量图输出失败")
		}
		log.Info().Str("out", *out).Msg("矢量图已保存")
	}
}

func writeDiagram(filename string, r svm.Result) error {
	d, err := diagram.Render(r)
	if err != nil {
		return err
	}
	return d.Save(filename, 6*vg.Inch)
}

func run(cfg *config.Config, log zerolog.Logger) error {
	srv := server.New(cfg, log)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
