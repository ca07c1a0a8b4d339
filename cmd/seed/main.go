// Package main provides a CLI tool for seeding a local database with the
// legacy inventory schema and a small demo dataset. Production databases
// are owned by the legacy system; this exists for development only.
package main

import (
	"context"
	"fmt"
	"os"

	"almoxarifado/internal/infrastructure/storage/postgres"
	"almoxarifado/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := createSchema(ctx, pool); err != nil {
		log.Fatalw("failed to create schema", "error", err)
	}
	log.Info("schema ready")

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
		log.Info("demo data seeded")
	}

	log.Info("seeding completed successfully")
}

func createSchema(ctx context.Context, pool *postgres.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entidade (
			id     BIGSERIAL PRIMARY KEY,
			nome   TEXT NOT NULL,
			status BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS almoxarifado (
			id          BIGSERIAL PRIMARY KEY,
			descricao   TEXT NOT NULL,
			endereco    TEXT,
			fk_entidade BIGINT NOT NULL REFERENCES entidade(id)
		)`,
		`CREATE TABLE IF NOT EXISTS operacao (
			id          BIGSERIAL PRIMARY KEY,
			codigo      TEXT NOT NULL,
			descricao   TEXT,
			tipo        SMALLINT NOT NULL,
			fk_entidade BIGINT NOT NULL REFERENCES entidade(id)
		)`,
		`CREATE TABLE IF NOT EXISTS produto (
			id             BIGSERIAL PRIMARY KEY,
			codigo         TEXT NOT NULL,
			descricao      TEXT,
			status         BOOLEAN NOT NULL DEFAULT TRUE,
			estoque_minimo NUMERIC(10,3),
			estoque_maximo NUMERIC(10,3)
		)`,
		`CREATE TABLE IF NOT EXISTS lote (
			id              BIGSERIAL PRIMARY KEY,
			nome_fabricante TEXT,
			numero          TEXT,
			data_fabricacao DATE,
			data_validade   DATE,
			fk_entidade     BIGINT NOT NULL REFERENCES entidade(id)
		)`,
		`CREATE TABLE IF NOT EXISTS movimentacao_geral (
			id                      BIGSERIAL PRIMARY KEY,
			numero                  TEXT,
			data                    TIMESTAMPTZ NOT NULL DEFAULT now(),
			historico               TEXT,
			status                  BOOLEAN NOT NULL DEFAULT TRUE,
			fk_almoxarifado_origem  BIGINT REFERENCES almoxarifado(id),
			fk_almoxarifado_destino BIGINT REFERENCES almoxarifado(id),
			fk_operacao             BIGINT NOT NULL REFERENCES operacao(id)
		)`,
		`CREATE TABLE IF NOT EXISTS item_movimentacao (
			id                     BIGSERIAL PRIMARY KEY,
			quantidade             NUMERIC(10,3) NOT NULL,
			valor_unitario         NUMERIC(10,3),
			fk_movimentacao_geral  BIGINT NOT NULL REFERENCES movimentacao_geral(id),
			fk_produto             BIGINT NOT NULL REFERENCES produto(id),
			fk_lote                BIGINT REFERENCES lote(id)
		)`,
		`CREATE TABLE IF NOT EXISTS item_almoxarifado (
			id              BIGSERIAL PRIMARY KEY,
			fk_produto      BIGINT NOT NULL REFERENCES produto(id),
			fk_lote         BIGINT REFERENCES lote(id),
			fk_almoxarifado BIGINT NOT NULL REFERENCES almoxarifado(id),
			quantidade      NUMERIC(10,3) NOT NULL DEFAULT 0,
			valor_medio     NUMERIC(10,3)
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// seedDemoData loads a small dataset: entity 1 with a central warehouse,
// one inbound movement of 10 units and one outbound of 3, plus a snapshot
// row that intentionally disagrees with history so the reconciliation
// report has something to show. Entity 2 owns no warehouses.
func seedDemoData(ctx context.Context, pool *postgres.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM entidade`).Scan(&count); err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		return nil
	}

	statements := []string{
		`INSERT INTO entidade (id, nome, status) VALUES
			(1, 'Prefeitura Municipal', TRUE),
			(2, 'Secretaria de Obras', TRUE)`,
		`INSERT INTO almoxarifado (id, descricao, endereco, fk_entidade) VALUES
			(10, 'Almoxarifado Central', 'Rua das Flores, 100', 1)`,
		`INSERT INTO operacao (id, codigo, descricao, tipo, fk_entidade) VALUES
			(7, 'ENT-001', 'Entrada por compra', 0, 1),
			(8, 'SAI-001', 'Saida por requisicao', 1, 1)`,
		`INSERT INTO produto (id, codigo, descricao, status, estoque_minimo, estoque_maximo) VALUES
			(1, 'P-001', 'Papel A4 500 folhas', TRUE, 5, 100),
			(2, 'P-002', 'Caneta esferografica azul', TRUE, 10, 500)`,
		`INSERT INTO lote (id, nome_fabricante, numero, data_fabricacao, data_validade, fk_entidade) VALUES
			(5, 'Fabrica Sul', 'L-2024-05', '2024-05-01', '2026-05-01', 1)`,
		`INSERT INTO movimentacao_geral (id, numero, data, historico, status, fk_almoxarifado_origem, fk_almoxarifado_destino, fk_operacao) VALUES
			(100, 'MOV-100', '2024-06-01', 'Compra inicial', TRUE, NULL, 10, 7),
			(101, 'MOV-101', '2024-06-15', 'Requisicao setor administrativo', TRUE, 10, NULL, 8)`,
		`INSERT INTO item_movimentacao (id, quantidade, valor_unitario, fk_movimentacao_geral, fk_produto, fk_lote) VALUES
			(1000, 10.000, 25.500, 100, 1, NULL),
			(1001, 3.000, 25.500, 101, 1, NULL),
			(1002, 2.000, 1.200, 100, 2, 5)`,
		`INSERT INTO item_almoxarifado (fk_produto, fk_lote, fk_almoxarifado, quantidade, valor_medio) VALUES
			(1, NULL, 10, 9.500, 25.500)`,
		`SELECT setval('entidade_id_seq', 100)`,
		`SELECT setval('almoxarifado_id_seq', 100)`,
		`SELECT setval('operacao_id_seq', 100)`,
		`SELECT setval('produto_id_seq', 100)`,
		`SELECT setval('lote_id_seq', 100)`,
		`SELECT setval('movimentacao_geral_id_seq', 1000)`,
		`SELECT setval('item_movimentacao_id_seq', 10000)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("insert demo data: %w", err)
		}
	}
	return nil
}
