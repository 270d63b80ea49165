package dbclient

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"econmap/internal/domain"
	"econmap/internal/etl"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// mongoConnector implements Connector for MongoDB. A table maps to a
// collection and each row to one document keyed by column name.
type mongoConnector struct {
	client *mongo.Client
	dbName string
}

// buildMongoURI returns the connection URI and database name for conn.
func buildMongoURI(conn *domain.MirrorConnection, password string) (uri, dbName string) {
	// A full connection string in Host (Atlas mongodb+srv:// or mongodb://)
	// is used as-is apart from the password placeholder.
	if strings.HasPrefix(conn.Host, "mongodb+srv://") || strings.HasPrefix(conn.Host, "mongodb://") {
		uri = conn.Host
		if password != "" {
			uri = strings.ReplaceAll(uri, "<password>", password)
			uri = strings.ReplaceAll(uri, "<db_password>", password)
		}
	} else {
		port := conn.Port
		if port == 0 {
			port = 27017
		}
		if conn.Username != "" {
			uri = fmt.Sprintf("mongodb://%s:%s@%s:%d", conn.Username, password, conn.Host, port)
		} else {
			uri = fmt.Sprintf("mongodb://%s:%d", conn.Host, port)
		}
	}

	dbName = conn.Database
	if dbName == "" {
		dbName = databaseFromURI(uri)
	}
	if dbName == "" {
		dbName = "test"
	}
	return uri, dbName
}

// databaseFromURI extracts the path segment of user:pass@host/DB?params.
func databaseFromURI(uri string) string {
	rest := uri
	for _, prefix := range []string{"mongodb+srv://", "mongodb://"} {
		if strings.HasPrefix(rest, prefix) {
			rest = rest[len(prefix):]
			break
		}
	}
	if at := strings.LastIndex(rest, "@"); at != -1 {
		rest = rest[at+1:]
	}
	slash := strings.Index(rest, "/")
	if slash == -1 {
		return ""
	}
	path := rest[slash+1:]
	if q := strings.Index(path, "?"); q != -1 {
		path = path[:q]
	}
	return path
}

func newMongoConnector(conn *domain.MirrorConnection, password string) (*mongoConnector, error) {
	uri, dbName := buildMongoURI(conn, password)

	logURI := uri
	if password != "" {
		logURI = strings.ReplaceAll(logURI, password, "***")
	}
	slog.Debug("connecting to mongo", "uri", logURI, "database", dbName)

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return &mongoConnector{client: client, dbName: dbName}, nil
}

func (c *mongoConnector) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return c.client.Ping(ctx, nil)
}

func (c *mongoConnector) ReplaceTable(ctx context.Context, table string, columns []etl.Column, rows [][]any) error {
	coll := c.client.Database(c.dbName).Collection(table)

	if err := coll.Drop(ctx); err != nil {
		return fmt.Errorf("drop collection: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	docs := make([]any, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return fmt.Errorf("row %d: %d values for %d columns", i, len(row), len(columns))
		}
		doc := make(bson.D, len(columns))
		for j, col := range columns {
			doc[j] = bson.E{Key: col.Name, Value: row[j]}
		}
		docs[i] = doc
	}

	// Ordered so documents keep the row order of the final table.
	if _, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("insert documents: %w", err)
	}
	return nil
}

func (c *mongoConnector) ReadTable(ctx context.Context, table string) (*QueryPage, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	coll := c.client.Database(c.dbName).Collection(table)
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 0}})

	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cursor.Close(ctx)

	page := &QueryPage{}
	index := map[string]int{}
	var docs []bson.D
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		for _, e := range doc {
			if _, ok := index[e.Key]; !ok {
				index[e.Key] = len(page.Columns)
				page.Columns = append(page.Columns, e.Key)
			}
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	for _, doc := range docs {
		row := make([]any, len(page.Columns))
		for _, e := range doc {
			row[index[e.Key]] = bsonValue(e.Value)
		}
		page.Rows = append(page.Rows, row)
	}
	return page, nil
}

// bsonValue maps decoded BSON scalars onto the types the SQL path yields.
func bsonValue(v any) any {
	switch val := v.(type) {
	case int32:
		return int(val)
	case int64:
		return int(val)
	case bson.Null:
		return nil
	default:
		return val
	}
}

func (c *mongoConnector) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.client.Disconnect(ctx)
}
