package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/yuvaraj-20/trendwear-core/internal/log"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// each pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline catalog data if the DB is empty (idempotent)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	log.Info("db_open", "dsn", dsn)
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Catalog items: products, thrift items and combos in one table, variant
-- columns left at their defaults on kinds that do not use them.
CREATE TABLE IF NOT EXISTS items(
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL CHECK (kind IN ('product','thrift','combo')),
  name TEXT NOT NULL,
  description TEXT,
  category TEXT,
  price NUMERIC NOT NULL DEFAULT 0 CHECK (price >= 0),
  tags_json TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  approved INTEGER NOT NULL DEFAULT 0,

  sizes_json TEXT,
  colors_json TEXT,
  stock INTEGER NOT NULL DEFAULT 0,

  condition TEXT,
  status TEXT,
  size TEXT,

  gender TEXT,
  occasion TEXT,
  season TEXT,
  combo_items_json TEXT,
  total_price NUMERIC NOT NULL DEFAULT 0,
  discount_pct NUMERIC NOT NULL DEFAULT 0 CHECK (discount_pct BETWEEN 0 AND 100),

  likes INTEGER NOT NULL DEFAULT 0,
  views INTEGER NOT NULL DEFAULT 0,
  shares INTEGER NOT NULL DEFAULT 0,
  orders_count INTEGER NOT NULL DEFAULT 0,
  comments INTEGER NOT NULL DEFAULT 0,
  trending_score NUMERIC NOT NULL DEFAULT 0,
  is_trending INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_items_kind       ON items(kind);
CREATE INDEX IF NOT EXISTS idx_items_category   ON items(LOWER(category));
CREATE INDEX IF NOT EXISTS idx_items_created_at ON items(created_at);

-- Carts, one per owner (guest session id or user id).
CREATE TABLE IF NOT EXISTS carts(
  owner_id TEXT PRIMARY KEY,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS cart_items(
  owner_id   TEXT NOT NULL REFERENCES carts(owner_id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  size  TEXT NOT NULL DEFAULT '',
  color TEXT NOT NULL DEFAULT '',
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add NUMERIC NOT NULL,
  PRIMARY KEY (owner_id, product_id, size, color)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM items`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	seed := `
INSERT INTO items(id,kind,name,description,category,price,tags_json,created_at,approved,sizes_json,colors_json,stock)
VALUES
 ('tee-001','product','Classic Tee','Plain cotton tee','T-Shirts',19.99,'["cotton","basics"]','2025-05-01T10:00:00Z',1,'["S","M","L"]','["Black","White"]',40),
 ('jkt-001','product','Denim Jacket','Washed denim jacket','Jackets',59.50,'["denim"]','2025-05-10T10:00:00Z',1,'["M","L"]','["Blue"]',12);

INSERT INTO items(id,kind,name,description,category,price,tags_json,created_at,approved,condition,status,size,gender,likes,views)
VALUES
 ('thr-001','thrift','Vintage Band Tee','Faded tour tee','T-Shirts',12.00,'["vintage"]','2025-04-20T10:00:00Z',1,'good','approved','M','men',14,120),
 ('thr-002','thrift','Corduroy Pants','Barely worn','Pants',18.00,'["corduroy"]','2025-04-25T10:00:00Z',1,'like-new','approved','L','women',9,80);

INSERT INTO items(id,kind,name,description,category,price,tags_json,created_at,approved,gender,occasion,season,combo_items_json,total_price,discount_pct,likes,views,shares,orders_count,comments,is_trending)
VALUES
 ('cmb-001','combo','Campus Casual','Tee, denim and sneakers','Combos',0,'["casual"]','2025-05-15T10:00:00Z',1,'unisex','casual','all season',
  '[{"ID":"tee-001","Name":"Classic Tee","Price":19.99},{"ID":"jkt-001","Name":"Denim Jacket","Price":59.50}]',89.99,10,120,900,40,25,60,1),
 ('cmb-002','combo','Wedding Guest','Linen set for summer weddings','Combos',0,'["formal","linen"]','2025-05-18T10:00:00Z',1,'men','wedding','summer',
  '[{"ID":"shr-010","Name":"Linen Shirt","Price":45.00}]',140.00,0,45,300,10,8,12,1);
`
	_, err := db.Exec(seed)
	return err
}
