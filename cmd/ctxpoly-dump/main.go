/*
   ctxpoly - Multivariate integer polynomials over shared variable orderings

   Copyright (c) 2012-2015  Casey Marshall <cmars@cmarstech.com>

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU Affero General Public License as published by
   the Free Software Foundation, version 3.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU Affero General Public License for more details.

   You should have received a copy of the GNU Affero General Public License
   along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// ctxpoly-dump prints the polynomials of a leveldb store as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"ctxpoly"
	"ctxpoly/store"
	"ctxpoly/store/leveldb"
)

func die(err error) {
	log.Errorf("%+v", err)
	os.Exit(1)
}

type entry struct {
	Key         store.Key `json:"key"`
	Context     string    `json:"context"`
	Poly        string    `json:"poly"`
	TotalDegree uint      `json:"totalDegree"`
	Normalized  string    `json:"normalized"`
}

func render(st store.Store, key store.Key) (*entry, error) {
	p, err := st.Get(key, nil)
	if err != nil {
		return nil, err
	}
	return &entry{
		Key:         key,
		Context:     p.Context().String(),
		Poly:        p.String(),
		TotalDegree: p.TotalDegree(),
		Normalized:  p.Normalized().String(),
	}, nil
}

func dump(st store.Store) error {
	keys, err := st.Keys()
	if err != nil {
		return err
	}
	entries := []*entry{}
	for _, key := range keys {
		e, err := render(st, key)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	out, err := json.MarshalIndent(entries, "", "\t")
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ctxpoly-dump <leveldb path> [config.toml]")
		os.Exit(1)
	}
	if len(os.Args) > 2 {
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			die(err)
		}
		settings, err := ctxpoly.ParseSettings(string(data))
		if err != nil {
			die(err)
		}
		if err = ctxpoly.InitLog(settings); err != nil {
			die(err)
		}
		if err = ctxpoly.Configure(settings); err != nil {
			die(err)
		}
	}

	settings := leveldb.DefaultSettings()
	settings.Path = os.Args[1]
	st, err := leveldb.New(settings)
	if err != nil {
		die(err)
	}
	err = st.Create()
	if err != nil {
		die(err)
	}
	defer st.Close()
	if err = dump(st); err != nil {
		st.Close()
		die(err)
	}
}
