package store

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Chart of accounts
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    type TEXT,
    balance REAL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Journal vouchers; amount is the total of the debit side
CREATE TABLE IF NOT EXISTS vouchers (
    id TEXT PRIMARY KEY,
    voucher_no TEXT NOT NULL UNIQUE,
    date TEXT,
    description TEXT,
    amount REAL,
    status TEXT DEFAULT 'pending',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Entry lines, normalized out of the voucher record.
-- Lines are owned by their voucher and cascade with it.
CREATE TABLE IF NOT EXISTS voucher_lines (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    voucher_id TEXT NOT NULL REFERENCES vouchers(id) ON DELETE CASCADE,
    line_no INTEGER NOT NULL,
    account_code TEXT NOT NULL,
    side TEXT NOT NULL,               -- 'debit' or 'credit'
    amount REAL NOT NULL,
    memo TEXT
);

CREATE INDEX IF NOT EXISTS idx_voucher_lines_voucher
    ON voucher_lines(voucher_id, line_no);

CREATE INDEX IF NOT EXISTS idx_voucher_lines_account
    ON voucher_lines(account_code);

CREATE INDEX IF NOT EXISTS idx_vouchers_status
    ON vouchers(status);

-- Bank statement lines, entered manually for reconciliation
CREATE TABLE IF NOT EXISTS bank_records (
    id TEXT PRIMARY KEY,
    date TEXT,
    description TEXT,
    amount REAL,
    type TEXT,                        -- 'income' or 'expense'
    matched BOOLEAN DEFAULT 0,
    matched_voucher_id TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bank_records_matched_voucher
    ON bank_records(matched_voucher_id);

-- Master data
CREATE TABLE IF NOT EXISTS customers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    contact TEXT,
    phone TEXT,
    email TEXT,
    address TEXT,
    balance REAL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS suppliers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    contact TEXT,
    phone TEXT,
    email TEXT,
    address TEXT,
    balance REAL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS employees (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    position TEXT,
    department TEXT,
    phone TEXT,
    email TEXT,
    salary REAL,
    join_date TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Business documents
CREATE TABLE IF NOT EXISTS purchase_orders (
    id TEXT PRIMARY KEY,
    order_no TEXT NOT NULL UNIQUE,
    date TEXT,
    supplier TEXT,
    items TEXT,
    amount REAL,
    status TEXT DEFAULT 'pending',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sales_invoices (
    id TEXT PRIMARY KEY,
    invoice_no TEXT NOT NULL UNIQUE,
    date TEXT,
    customer TEXT,
    items TEXT,
    amount REAL,
    status TEXT DEFAULT 'draft',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    date TEXT,
    employee TEXT,
    category TEXT,
    description TEXT,
    amount REAL,
    status TEXT DEFAULT 'pending',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tax_records (
    id TEXT PRIMARY KEY,
    period TEXT,
    type TEXT,
    taxable_amount REAL,
    tax_rate REAL,
    tax_amount REAL,
    status TEXT DEFAULT 'pending',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Accounting periods; the period key is a voucher-date prefix
-- (YYYY-MM for months, YYYY for years)
CREATE TABLE IF NOT EXISTS periods (
    id TEXT PRIMARY KEY,
    period TEXT NOT NULL UNIQUE,
    type TEXT,                        -- 'month' or 'year'
    status TEXT DEFAULT 'open',
    closed_date TEXT,
    closed_by TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
