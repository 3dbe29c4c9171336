package main

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/parttimenerd/btfparse/btf"
)

type entryJSON struct {
	ID   btf.TypeID `json:"id"`
	Kind string     `json:"kind"`
	Name string     `json:"name,omitempty"`
	Data btf.Type   `json:"data"`
}

func dumpCmd() *cli.Command {
	var (
		path       string
		kindFilter string
		nameFilter string
		limit      int64
	)

	return &cli.Command{
		Name:  "dump",
		Usage: "Decode a BTF blob and print its catalog as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "path",
				Aliases:     []string{"p"},
				Usage:       "path to the BTF blob",
				Destination: &path,
				Required:    true,
			},
			&cli.StringFlag{Name: "kind", Usage: "only show entries of this kind", Destination: &kindFilter},
			&cli.StringFlag{Name: "name", Usage: "only show the entry with this exact name", Destination: &nameFilter},
			&cli.IntFlag{Name: "limit", Usage: "limit entries printed (0 = no limit)", Destination: &limit},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			catalog, err := btf.Load(path)
			if err != nil {
				logDecodeError(path, err)
				return err
			}

			var types []btf.Type
			var ids []btf.TypeID
			switch {
			case nameFilter != "":
				for _, id := range catalog.ByName(nameFilter) {
					if t, ok := catalog.ByID(id); ok {
						types = append(types, t)
						ids = append(ids, id)
					}
				}
			case kindFilter != "":
				kind := kindFromFlag(kindFilter)
				for i, t := range catalog.All() {
					if t.Kind() == kind {
						types = append(types, t)
						ids = append(ids, btf.TypeID(i+1))
					}
				}
			default:
				types = catalog.All()
				for i := range types {
					ids = append(ids, btf.TypeID(i+1))
				}
			}

			if limit > 0 && int64(len(types)) > limit {
				types = types[:limit]
			}

			entries := make([]entryJSON, 0, len(types))
			for i, t := range types {
				entries = append(entries, entryJSON{
					ID:   ids[i],
					Kind: t.Kind().String(),
					Data: t,
				})
			}

			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func kindFromFlag(s string) btf.Kind {
	for k := btf.KindVoid; k <= btf.KindFuncProto; k++ {
		if k.String() == s {
			return k
		}
	}
	return btf.KindVoid
}

func logDecodeError(path string, err error) {
	berr, ok := err.(*btf.Error)
	if !ok {
		Logger().Error("btf decode failed", zap.String("path", path), zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.String("path", path),
		zap.Stringer("code", berr.Code),
	}
	if berr.Range != nil {
		fields = append(fields, zap.Uint64("offset", berr.Range.Offset), zap.Uint64("size", berr.Range.Size))
	}
	Logger().Error("btf decode failed", fields...)
}
