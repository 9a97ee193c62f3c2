// Package db opens PostgreSQL connection pools for the translation store.
//
//	pool, err := db.Connect(ctx, os.Getenv("DATABASE_URL"))
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//	store := translation.NewPostgresStore(pool)
package db
