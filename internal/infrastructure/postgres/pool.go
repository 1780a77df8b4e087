// Package postgres implementa los puertos de persistencia sobre PostgreSQL
// usando pgx/v5.
package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frenchys-amb/ambutrack-api/pkg/config"
)

// Dimensionado del pool. El servicio atiende una flota chica (decenas de
// unidades, un puñado de operadores simultáneos); las transferencias de
// requisición toman locks de fila, así que conviene un pool corto con
// conexiones que no envejezcan.
const (
	poolMaxConns       = 10
	poolMinConns       = 1
	poolConnLifetime   = 30 * time.Minute
	poolConnIdleTime   = 5 * time.Minute
	poolHealthCheck    = time.Minute
	poolConnectTimeout = 5 * time.Second
)

// NewPool crea el pool de conexiones y verifica la conexión con un ping.
// El DSN sale de DATABASE_URL si está definido (Supabase) o de las variables
// DB_*; en ambos casos el dial fuerza IPv4 porque los contenedores suelen no
// tener ruta IPv6 y el proveedor puede publicar solo registros AAAA.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsnFor(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.ConnConfig.DialFunc = dialIPv4First
	poolConfig.ConnConfig.ConnectTimeout = poolConnectTimeout

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolConnLifetime
	poolConfig.MaxConnIdleTime = poolConnIdleTime
	poolConfig.HealthCheckPeriod = poolHealthCheck

	// Codec NUMERIC/DECIMAL -> shopspring/decimal en cada conexión. Lo usan
	// las columnas del estado mecánico del checklist (kilometraje, presiones
	// de los tanques de oxígeno).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// dsnFor arma el connection string. Con DATABASE_URL se reescribe el host a
// su IPv4 cuando resuelve; con variables DB_* se delega en config.DSN.
func dsnFor(cfg config.DBConfig) string {
	if cfg.DatabaseURL == "" {
		return cfg.DSN()
	}
	u, err := url.Parse(cfg.DatabaseURL)
	if err != nil {
		return cfg.DatabaseURL
	}
	ipv4, err := lookupIPv4(u.Hostname())
	if err != nil {
		return cfg.DatabaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}

// dialIPv4First intenta conectar por tcp4; si el host no tiene IPv4 cae al
// dial normal con la dirección original.
func dialIPv4First(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ipv4, err := lookupIPv4(host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// lookupIPv4 resuelve un host a su dirección IPv4. Si el resolver del
// contenedor solo devuelve AAAA, reintenta contra un DNS público.
func lookupIPv4(host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("%s no es IPv4", host)
	}
	if ip, ok := firstIPv4(net.DefaultResolver, host); ok {
		return ip, nil
	}
	fallback := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	if ip, ok := firstIPv4(fallback, host); ok {
		return ip, nil
	}
	return "", fmt.Errorf("sin dirección IPv4 para %s", host)
}

func firstIPv4(r *net.Resolver, host string) (string, bool) {
	ips, err := r.LookupIP(context.Background(), "ip4", host)
	if err != nil {
		return "", false
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), true
		}
	}
	return "", false
}
