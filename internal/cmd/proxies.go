package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"

	"github.com/jimezsa/findyourhome/internal/config"
	"github.com/jimezsa/findyourhome/internal/export"
	"github.com/jimezsa/findyourhome/internal/network"
)

type ProxiesCmd struct {
	Check ProxyCheckCmd `cmd:"" help:"Validate proxies against a target URL."`
}

type ProxyCheckCmd struct {
	Proxies string `help:"Comma-separated proxy URLs (default: configured proxies)." env:"FINDYOURHOME_PROXIES"`
	Target  string `help:"Target URL." default:"https://www.google.com"`
	Timeout int    `help:"Timeout in seconds." default:"15"`
}

type ProxyCheckResult struct {
	Proxy     string `json:"proxy"`
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

func (p *ProxyCheckCmd) Run(ctx *Context) error {
	proxies, err := config.LoadProxies(p.Proxies)
	if err != nil {
		return err
	}
	if len(proxies) == 0 {
		return network.ErrNoProxies
	}

	timeout := time.Duration(p.Timeout) * time.Second
	results := make([]ProxyCheckResult, 0, len(proxies))
	for _, proxy := range proxies {
		results = append(results, checkProxy(ctx, proxy, p.Target, timeout))
	}
	return writeProxyResults(ctx, results)
}

func checkProxy(ctx *Context, proxy, target string, timeout time.Duration) ProxyCheckResult {
	result := ProxyCheckResult{Proxy: proxy, Status: "error"}
	fail := func(err error) ProxyCheckResult {
		result.Error = err.Error()
		ctx.Logger.Debug().Str("proxy", proxy).Err(err).Msg("Proxy check failed")
		return result
	}

	rotator, err := network.NewRotator([]string{proxy}, 5*time.Minute)
	if err != nil {
		return fail(err)
	}
	client, err := network.NewClient(rotator, timeout)
	if err != nil {
		return fail(err)
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	req, err := fhttp.NewRequestWithContext(reqCtx, fhttp.MethodGet, target, nil)
	if err != nil {
		return fail(err)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return fail(err)
	}
	_ = resp.Body.Close()

	result.LatencyMS = time.Since(start).Milliseconds()
	result.Status = strconv.Itoa(resp.StatusCode)
	return result
}

func writeProxyResults(ctx *Context, results []ProxyCheckResult) error {
	if ctx.JSONOutput {
		return export.WriteJSON(ctx.Out, results)
	}

	if ctx.PlainText {
		for _, res := range results {
			line := []string{res.Proxy, res.Status, strconv.FormatInt(res.LatencyMS, 10), res.Error}
			fmt.Fprintln(ctx.Out, strings.Join(line, "\t"))
		}
		return nil
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "proxy\tstatus\tlatency_ms\terror")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", res.Proxy, res.Status, res.LatencyMS, res.Error)
	}
	return tw.Flush()
}
